// internal/event/types.go
package event

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
)

const (
	EnemySpawned    EventType = "EnemySpawned"    // Враг появился
	EnemyKilled     EventType = "EnemyKilled"     // Враг уничтожен, награда начислена
	EnemyLeaked     EventType = "EnemyLeaked"     // Враг дошёл до конца пути
	ProjectileFired EventType = "ProjectileFired" // Башня выстрелила
	ProjectileHit   EventType = "ProjectileHit"   // Снаряд долетел
	TowerPlaced     EventType = "TowerPlaced"     // Башня построена
	TowerUpgraded   EventType = "TowerUpgraded"
	TowerSold       EventType = "TowerSold"
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded" // Волна закончилась
	GameOver        EventType = "GameOver"
)

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{
	EnemySpawned, EnemyKilled, EnemyLeaked, ProjectileFired, ProjectileHit,
	TowerPlaced, TowerUpgraded, TowerSold, WaveStarted, WaveEnded, GameOver,
}

// EnemyData is the payload of EnemySpawned, EnemyKilled and EnemyLeaked.
type EnemyData struct {
	Enemy *component.Enemy
}

// ProjectileData is the payload of ProjectileFired and ProjectileHit.
// Victims is only filled for ProjectileHit.
type ProjectileData struct {
	Projectile *component.Projectile
	Victims    int
}

// TowerData is the payload of the tower events. Amount is the money spent
// (placement, upgrade) or refunded (sale).
type TowerData struct {
	Tower  *component.Tower
	Kind   defs.TowerID
	Amount int
}

// WaveData is the payload of WaveStarted and WaveEnded.
type WaveData struct {
	Definition defs.WaveDefinition
}

// GameOverData is the payload of GameOver.
type GameOverData struct {
	Wave  int
	Money int
}
