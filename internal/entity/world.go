// internal/entity/world.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// World holds the live entity collections of one game session. Every slice
// keeps insertion order: targeting and inspection depend on it.
type World struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
}

func NewWorld() *World {
	return &World{NextID: 1}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddEnemy(e *component.Enemy)           { w.Enemies = append(w.Enemies, e) }
func (w *World) AddTower(t *component.Tower)           { w.Towers = append(w.Towers, t) }
func (w *World) AddProjectile(p *component.Projectile) { w.Projectiles = append(w.Projectiles, p) }

// RemoveTower deletes t, keeping the order of the remaining towers.
func (w *World) RemoveTower(t *component.Tower) bool {
	for i, tower := range w.Towers {
		if tower == t {
			copy(w.Towers[i:], w.Towers[i+1:])
			w.Towers[len(w.Towers)-1] = nil
			w.Towers = w.Towers[:len(w.Towers)-1]
			return true
		}
	}
	return false
}

// TowerAt returns the first tower, in placement order, whose footprint
// contains (x, y).
func (w *World) TowerAt(x, y float64) *component.Tower {
	for _, t := range w.Towers {
		if t.Contains(x, y) {
			return t
		}
	}
	return nil
}

// FindEnemy returns the live enemy with the given id.
func (w *World) FindEnemy(id types.EntityID) *component.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Clear drops every entity and restarts id allocation.
func (w *World) Clear() {
	w.NextID = 1
	w.Enemies = nil
	w.Towers = nil
	w.Projectiles = nil
}
