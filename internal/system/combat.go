// internal/system/combat.go
package system

import (
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	world            *entity.World
	eventDispatcher  *event.Dispatcher
	projectileSpeed  float64
	projectileRadius float64
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher, projectileSpeed, projectileRadius float64) *CombatSystem {
	return &CombatSystem{
		world:            world,
		eventDispatcher:  eventDispatcher,
		projectileSpeed:  projectileSpeed,
		projectileRadius: projectileRadius,
	}
}

// Update lets every tower whose cooldown has passed fire at its target.
// Returns the number of shots fired.
func (s *CombatSystem) Update(now time.Duration) int {
	fired := 0
	for _, tower := range s.world.Towers {
		target := s.FindTarget(tower)
		if target == nil || !tower.CanFire(now) {
			continue
		}
		tower.MarkFired(now)
		s.createProjectile(tower, target)
		fired++
	}
	return fired
}

// FindTarget returns the first enemy, in spawn order, strictly inside the
// tower's range. It is not the nearest one.
func (s *CombatSystem) FindTarget(tower *component.Tower) *component.Enemy {
	for _, enemy := range s.world.Enemies {
		if tower.DistanceTo(enemy.Position) < tower.Range {
			return enemy
		}
	}
	return nil
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy) {
	proj := &component.Projectile{
		ID:       s.world.NewEntity(),
		Position: tower.Position,
		SourceID: tower.ID,
		Target:   target,
		Speed:    s.projectileSpeed,
		Radius:   s.projectileRadius,
		Damage:   tower.Damage,
		Effect:   tower.Effect,
	}
	s.world.AddProjectile(proj)
	s.eventDispatcher.Emit(event.ProjectileFired, event.ProjectileData{Projectile: proj})
}
