// pkg/route/route.go
package route

import (
	"errors"
	"math"
)

// ErrTooShort is returned when a route has fewer than two waypoints.
var ErrTooShort = errors.New("route needs at least two waypoints")

// Point is a world-space coordinate.
type Point struct {
	X, Y float64
}

// Segment is the straight leg between two consecutive waypoints.
type Segment struct {
	From, To Point
}

// Rect is an axis-aligned box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// ContainsStrict reports whether p lies strictly inside the box.
func (r Rect) ContainsStrict(p Point) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Y > r.MinY && p.Y < r.MaxY
}

// Bounds returns the segment's bounding box grown by pad on every side.
func (s Segment) Bounds(pad float64) Rect {
	return Rect{
		MinX: math.Min(s.From.X, s.To.X) - pad,
		MinY: math.Min(s.From.Y, s.To.Y) - pad,
		MaxX: math.Max(s.From.X, s.To.X) + pad,
		MaxY: math.Max(s.From.Y, s.To.Y) + pad,
	}
}

// DistanceTo returns the shortest distance from p to the segment.
func (s Segment) DistanceTo(p Point) float64 {
	dx := s.To.X - s.From.X
	dy := s.To.Y - s.From.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.X-s.From.X, p.Y-s.From.Y)
	}
	t := ((p.X-s.From.X)*dx + (p.Y-s.From.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	cx := s.From.X + t*dx
	cy := s.From.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy)
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return math.Hypot(s.To.X-s.From.X, s.To.Y-s.From.Y)
}

// Route is the fixed, ordered list of waypoints enemies walk along.
type Route struct {
	waypoints []Point
	segments  []Segment
}

// New builds a route from the given waypoints. The slice is copied.
func New(waypoints []Point) (*Route, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooShort
	}
	r := &Route{waypoints: append([]Point(nil), waypoints...)}
	for i := 0; i < len(r.waypoints)-1; i++ {
		r.segments = append(r.segments, Segment{From: r.waypoints[i], To: r.waypoints[i+1]})
	}
	return r, nil
}

// MustNew is New for static, known-good waypoint lists.
func MustNew(waypoints []Point) *Route {
	r, err := New(waypoints)
	if err != nil {
		panic(err)
	}
	return r
}

// Start returns the spawn waypoint.
func (r *Route) Start() Point { return r.waypoints[0] }

// Len returns the number of waypoints.
func (r *Route) Len() int { return len(r.waypoints) }

// LastIndex returns the index of the final waypoint. An enemy whose path
// index reaches it has left the map.
func (r *Route) LastIndex() int { return len(r.waypoints) - 1 }

// Waypoint returns waypoint i.
func (r *Route) Waypoint(i int) Point { return r.waypoints[i] }

// Waypoints returns a copy of all waypoints.
func (r *Route) Waypoints() []Point { return append([]Point(nil), r.waypoints...) }

// Segments returns the legs of the route in walking order.
func (r *Route) Segments() []Segment { return r.segments }

// WithinPaddedBounds reports whether p falls inside the bounding box of any
// segment grown by clearance. This is deliberately coarse: points near the
// inside corner of two diagonal-adjacent legs are rejected too.
func (r *Route) WithinPaddedBounds(p Point, clearance float64) bool {
	for _, s := range r.segments {
		if s.Bounds(clearance).ContainsStrict(p) {
			return true
		}
	}
	return false
}

// DistanceTo returns the shortest distance from p to the route polyline.
func (r *Route) DistanceTo(p Point) float64 {
	best := math.Inf(1)
	for _, s := range r.segments {
		if d := s.DistanceTo(p); d < best {
			best = d
		}
	}
	return best
}

// Length returns the total walking distance from the first to the last waypoint.
func (r *Route) Length() float64 {
	total := 0.0
	for _, s := range r.segments {
		total += s.Length()
	}
	return total
}
