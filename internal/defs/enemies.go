// internal/defs/enemies.go
package defs

// EnemyTemplate holds the static data every spawned enemy starts from.
// Health and speed grow linearly with the wave number.
type EnemyTemplate struct {
	Radius        float64
	Bounty        int
	BaseHealth    int
	HealthPerWave int
	BaseSpeed     float64
	SpeedPerWave  float64
}

// DefaultEnemy is the single enemy kind the waves are made of.
var DefaultEnemy = EnemyTemplate{
	Radius:        15,
	Bounty:        10,
	BaseHealth:    50,
	HealthPerWave: 20,
	BaseSpeed:     1,
	SpeedPerWave:  0.1,
}

// Scaled returns the health and speed of an enemy spawned in wave n.
func (t EnemyTemplate) Scaled(wave int) (health int, speed float64) {
	return t.BaseHealth + t.HealthPerWave*wave, t.BaseSpeed + t.SpeedPerWave*float64(wave)
}
