// pkg/utils/math.go
package utils

import "math"

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// StepToward moves (x, y) by step units toward (tx, ty). When the target is
// closer than step the point snaps onto it and arrived is true.
func StepToward(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx := tx - x
	dy := ty - y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < step || dist == 0 {
		return tx, ty, true
	}
	return x + (dx/dist)*step, y + (dy/dist)*step, false
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
