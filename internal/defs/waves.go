// internal/defs/waves.go
package defs

import "time"

const (
	WaveBaseEnemies      = 10
	WaveEnemiesIncrement = 5
	WaveSpawnInterval    = 600 * time.Millisecond
)

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Number        int
	Count         int           // Количество врагов в волне
	Health        int           // Здоровье каждого врага
	Speed         float64       // Скорость каждого врага (единиц за тик)
	SpawnInterval time.Duration // Интервал между появлением врагов
}

// WaveFor returns the definition of wave n for the given enemy template.
func WaveFor(n int, enemy EnemyTemplate) WaveDefinition {
	health, speed := enemy.Scaled(n)
	return WaveDefinition{
		Number:        n,
		Count:         WaveBaseEnemies + WaveEnemiesIncrement*n,
		Health:        health,
		Speed:         speed,
		SpawnInterval: WaveSpawnInterval,
	}
}
