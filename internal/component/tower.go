// internal/component/tower.go
package component

import (
	"time"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Tower is a placed defensive unit. Damage, Range, Cooldown and Effect are
// derived from the archetype tier at Level and are refreshed by SetLevel.
type Tower struct {
	ID types.EntityID
	Position
	ArchetypeID defs.TowerID
	Level       int // с единицы
	Radius      float64

	Damage   int
	Range    float64
	Cooldown time.Duration
	Effect   defs.Effect

	LastFiredAt time.Duration
	HasFired    bool // Ещё ни разу не стреляла — может стрелять сразу
}

// NewTower creates a level 1 tower of the given archetype.
func NewTower(id types.EntityID, x, y, radius float64, archetype *defs.TowerArchetype) *Tower {
	t := &Tower{
		ID:          id,
		Position:    Position{X: x, Y: y},
		ArchetypeID: archetype.ID,
		Radius:      radius,
	}
	t.SetLevel(archetype, 1)
	return t
}

// SetLevel moves the tower to level and recomputes its derived stats.
func (t *Tower) SetLevel(archetype *defs.TowerArchetype, level int) {
	tier := archetype.Tier(level)
	t.Level = level
	t.Damage = tier.Damage
	t.Range = tier.Range
	t.Cooldown = tier.Cooldown
	t.Effect = tier.Effect
}

// CanFire reports whether the cooldown has elapsed at now.
func (t *Tower) CanFire(now time.Duration) bool {
	return !t.HasFired || now-t.LastFiredAt > t.Cooldown
}

// MarkFired records a shot at now.
func (t *Tower) MarkFired(now time.Duration) {
	t.LastFiredAt = now
	t.HasFired = true
}

// Contains reports whether (x, y) lies inside the tower's footprint.
func (t *Tower) Contains(x, y float64) bool {
	return t.DistanceTo(Position{X: x, Y: y}) < t.Radius
}
