// internal/app/placement.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/route"
)

// IsValidPlacement reports whether a tower may stand at (x, y): away from
// the world edges, outside every path segment's padded bounding box and
// not too close to another tower. Money is not checked.
func (g *Game) IsValidPlacement(x, y float64) bool {
	if x < config.PlacementMargin || x > config.WorldWidth-config.PlacementMargin ||
		y < config.PlacementMargin || y > config.WorldHeight-config.PlacementMargin {
		return false
	}
	// Грубая проверка по прямоугольникам сегментов, как в оригинальной карте
	if g.Route.WithinPaddedBounds(route.Point{X: x, Y: y}, config.PathClearance) {
		return false
	}
	p := component.Position{X: x, Y: y}
	for _, t := range g.World.Towers {
		if t.DistanceTo(p) < config.TowerSpacing {
			return false
		}
	}
	return true
}

// Preview describes the ghost tower drawn under the cursor.
type Preview struct {
	X, Y       float64
	Valid      bool
	Affordable bool
	Range      float64 // Радиус первого уровня
}

// PreviewAt returns the placement preview for the selected tower type.
// ok is false when nothing is selected.
func (g *Game) PreviewAt(x, y float64) (Preview, bool) {
	archetype, ok := g.Catalog.Get(g.selected)
	if g.selected == "" || !ok {
		return Preview{}, false
	}
	return Preview{
		X:          x,
		Y:          y,
		Valid:      g.IsValidPlacement(x, y),
		Affordable: g.Money >= PlacementCost(archetype),
		Range:      archetype.Tier(1).Range,
	}, true
}
