package app

import (
	"testing"

	"go-path-defense/internal/defs"
)

func TestSnapshot(t *testing.T) {
	g, _ := newTestGame(t, func(o *Options) { o.Money = 1000 })
	placeTower(t, g, defs.TowerBasic, 300, 300)
	placeTower(t, g, defs.TowerMortar, 300, 400)
	g.InspectTowerAt(300, 400)
	g.StartWave()
	g.Advance()

	s := g.Snapshot()
	if s.Lives != 20 || s.Money != 1000-50-150 || s.Wave != 1 || !s.WaveInProgress || s.GameOver {
		t.Fatalf("unexpected header %+v", s)
	}
	if len(s.Enemies) != 1 || s.PendingSpawns != 14 {
		t.Fatalf("expected 1 enemy and 14 pending, got %d and %d", len(s.Enemies), s.PendingSpawns)
	}
	if s.Enemies[0].HealthRatio != 1 || s.Enemies[0].Radius != 15 || s.Enemies[0].Slowed {
		t.Errorf("unexpected enemy view %+v", s.Enemies[0])
	}
	if len(s.Towers) != 2 {
		t.Fatalf("expected 2 towers, got %d", len(s.Towers))
	}
	if s.Towers[0].Inspected || s.Towers[0].Range != 0 {
		t.Error("range is only exposed for the inspected tower")
	}
	mortar := s.Towers[1]
	if !mortar.Inspected || mortar.Range != 250 || mortar.Level != 1 || mortar.Color.A != 255 {
		t.Errorf("unexpected inspected tower view %+v", mortar)
	}

	info := s.Inspected
	if info == nil {
		t.Fatal("expected inspected tower info")
	}
	if info.Name != "Mortar" || info.Damage != 70 || info.UpgradeCost != 125 || info.MaxedOut || info.SellValue != 105 {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Effect.Kind != defs.EffectSplash || info.Effect.Radius != 40 {
		t.Errorf("expected splash 40, got %v", info.Effect)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g, _ := newTestGame(t, nil)
	placeTower(t, g, defs.TowerBasic, 300, 300)
	s := g.Snapshot()
	s.Towers[0].X = 0
	if g.World.Towers[0].X != 300 {
		t.Error("snapshot must not alias the world")
	}
}
