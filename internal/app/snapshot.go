// internal/app/snapshot.go
package app

import (
	"image/color"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/types"
)

// EnemyView is what a frontend needs to draw an enemy.
type EnemyView struct {
	ID          types.EntityID
	X, Y        float64
	Radius      float64
	HealthRatio float64
	Slowed      bool
}

// TowerView is what a frontend needs to draw a tower. Range is only set for
// the inspected tower.
type TowerView struct {
	ID        types.EntityID
	Kind      defs.TowerID
	X, Y      float64
	Radius    float64
	Level     int
	Color     color.RGBA
	Inspected bool
	Range     float64
}

type ProjectileView struct {
	X, Y   float64
	Radius float64
}

// TowerInfo fills the info panel of the inspected tower.
type TowerInfo struct {
	Name        string
	Kind        defs.TowerID
	Level       int
	MaxLevel    int
	Damage      int
	Range       float64
	Cooldown    time.Duration
	Effect      defs.Effect
	UpgradeCost int
	MaxedOut    bool // UpgradeCost не имеет смысла
	SellValue   int
}

// Snapshot is a read-only copy of the display state.
type Snapshot struct {
	Lives          int
	Money          int
	Wave           int
	WaveInProgress bool
	GameOver       bool
	Phase          component.Phase
	Selected       defs.TowerID
	PendingSpawns  int

	Enemies     []EnemyView
	Towers      []TowerView
	Projectiles []ProjectileView
	Inspected   *TowerInfo
}

// Snapshot copies the current display state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Lives:          g.Lives,
		Money:          g.Money,
		Wave:           g.Wave,
		WaveInProgress: g.WaveInProgress(),
		GameOver:       g.IsGameOver(),
		Phase:          g.Phase(),
		Selected:       g.selected,
		PendingSpawns:  g.WaveSystem.PendingSpawns(g.Session),
		Enemies:        make([]EnemyView, 0, len(g.World.Enemies)),
		Towers:         make([]TowerView, 0, len(g.World.Towers)),
		Projectiles:    make([]ProjectileView, 0, len(g.World.Projectiles)),
	}
	for _, e := range g.World.Enemies {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:          e.ID,
			X:           e.X,
			Y:           e.Y,
			Radius:      e.Radius,
			HealthRatio: e.HealthRatio(),
			Slowed:      e.IsSlowed(),
		})
	}
	for _, t := range g.World.Towers {
		view := TowerView{
			ID:        t.ID,
			Kind:      t.ArchetypeID,
			X:         t.X,
			Y:         t.Y,
			Radius:    t.Radius,
			Level:     t.Level,
			Inspected: t == g.inspected,
		}
		if archetype, ok := g.Catalog.Get(t.ArchetypeID); ok {
			view.Color = archetype.Color
		}
		if view.Inspected {
			view.Range = t.Range
		}
		s.Towers = append(s.Towers, view)
	}
	for _, p := range g.World.Projectiles {
		s.Projectiles = append(s.Projectiles, ProjectileView{X: p.X, Y: p.Y, Radius: p.Radius})
	}
	s.Inspected = g.InspectedInfo()
	return s
}

// InspectedInfo describes the inspected tower, or returns nil.
func (g *Game) InspectedInfo() *TowerInfo {
	t := g.inspected
	if t == nil {
		return nil
	}
	archetype, ok := g.Catalog.Get(t.ArchetypeID)
	if !ok {
		return nil
	}
	info := &TowerInfo{
		Name:      archetype.Name,
		Kind:      archetype.ID,
		Level:     t.Level,
		MaxLevel:  archetype.MaxLevel(),
		Damage:    t.Damage,
		Range:     t.Range,
		Cooldown:  t.Cooldown,
		Effect:    t.Effect,
		SellValue: SellValue(archetype, t.Level),
	}
	info.UpgradeCost, ok = UpgradeCost(archetype, t.Level)
	info.MaxedOut = !ok
	return info
}
