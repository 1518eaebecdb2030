// internal/component/movement.go
package component

import "go-path-defense/pkg/utils"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// DistanceTo returns the distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return utils.Distance(p.X, p.Y, o.X, o.Y)
}
