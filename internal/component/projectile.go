// internal/component/projectile.go
package component

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Projectile представляет летящий снаряд.
// Target stays referenced after the enemy leaves the world, so a shot keeps
// flying to where its target was last seen.
type Projectile struct {
	ID types.EntityID
	Position
	SourceID types.EntityID
	Target   *Enemy
	Speed    float64
	Radius   float64
	Damage   int         // Копия урона башни на момент выстрела
	Effect   defs.Effect // Копия эффекта башни на момент выстрела
}

// IsSplash reports whether the projectile resolves as an area hit.
func (p *Projectile) IsSplash() bool { return p.Effect.Kind == defs.EffectSplash }
