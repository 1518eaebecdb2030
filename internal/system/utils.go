// internal/system/utils.go
package system

import (
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
)

// ApplyHit resolves a projectile that reached its target and returns how
// many enemies it damaged. Splash hits every enemy strictly inside the
// radius around the projectile, the locked target included, once each and
// with no falloff. Otherwise only the locked target is hit, and a slow
// effect restarts from the target's base speed.
func ApplyHit(enemies []*component.Enemy, proj *component.Projectile, now time.Duration) int {
	switch proj.Effect.Kind {
	case defs.EffectSplash:
		victims := 0
		for _, enemy := range enemies {
			if proj.DistanceTo(enemy.Position) < proj.Effect.Radius {
				enemy.TakeDamage(proj.Damage)
				victims++
			}
		}
		return victims
	case defs.EffectSlow:
		proj.Target.TakeDamage(proj.Damage)
		proj.Target.ApplySlow(proj.Effect, now)
		return 1
	default:
		proj.Target.TakeDamage(proj.Damage)
		return 1
	}
}
