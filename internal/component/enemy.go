// internal/component/enemy.go
package component

import (
	"time"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID types.EntityID
	Position
	PathIndex   int     // Индекс последнего достигнутого вейпоинта
	BaseSpeed   float64 // Скорость без эффектов
	Speed       float64 // Текущая скорость
	Health      int     // Может кратковременно уйти в минус до удаления
	MaxHealth   int
	Radius      float64
	Bounty      int
	SlowedUntil time.Duration // Момент окончания замедления
}

// NewEnemy creates an enemy at (x, y) with full health.
func NewEnemy(id types.EntityID, x, y float64, health int, speed float64, tpl defs.EnemyTemplate) *Enemy {
	return &Enemy{
		ID:        id,
		Position:  Position{X: x, Y: y},
		BaseSpeed: speed,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		Radius:    tpl.Radius,
		Bounty:    tpl.Bounty,
	}
}

// IsDead reports whether the enemy's health is depleted.
func (e *Enemy) IsDead() bool { return e.Health <= 0 }

// IsSlowed reports whether a slow is currently lowering the speed.
func (e *Enemy) IsSlowed() bool { return e.Speed < e.BaseSpeed }

// HealthRatio returns current/max health clamped to [0, 1].
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	if e.Health >= e.MaxHealth {
		return 1
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// TakeDamage lowers health. Health is never raised.
func (e *Enemy) TakeDamage(damage int) {
	if damage > 0 {
		e.Health -= damage
	}
}

// ApplySlow sets the speed from the base speed, so repeated slows replace
// each other instead of compounding, and restarts the expiry.
func (e *Enemy) ApplySlow(effect defs.Effect, now time.Duration) {
	e.Speed = e.BaseSpeed * effect.Factor
	e.SlowedUntil = now + effect.Duration
}

// ExpireSlow restores the base speed once the slow has run out.
func (e *Enemy) ExpireSlow(now time.Duration) {
	if now > e.SlowedUntil {
		e.Speed = e.BaseSpeed
	}
}
