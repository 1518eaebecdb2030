// internal/system/projectile.go
package system

import (
	"time"

	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update moves every projectile toward its target and resolves the ones
// that arrived. A target that has left the world keeps its last position,
// so the projectile finishes its flight there.
func (s *ProjectileSystem) Update(now time.Duration) int {
	hits := 0
	kept := s.world.Projectiles[:0]
	for _, proj := range s.world.Projectiles {
		target := proj.Target
		proj.X, proj.Y, _ = utils.StepToward(proj.X, proj.Y, target.X, target.Y, proj.Speed)

		// Сплэш не ждёт, пока долетит до трупа
		arrived := proj.DistanceTo(target.Position) < target.Radius
		if !arrived && !(target.IsDead() && proj.IsSplash()) {
			kept = append(kept, proj)
			continue
		}
		victims := ApplyHit(s.world.Enemies, proj, now)
		hits++
		s.eventDispatcher.Emit(event.ProjectileHit, event.ProjectileData{Projectile: proj, Victims: victims})
	}
	for i := len(kept); i < len(s.world.Projectiles); i++ {
		s.world.Projectiles[i] = nil
	}
	s.world.Projectiles = kept
	return hits
}
