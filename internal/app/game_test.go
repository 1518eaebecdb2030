package app

import (
	"errors"
	"testing"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/route"
)

type eventCounter struct {
	counts map[event.EventType]int
}

func (c *eventCounter) OnEvent(e event.Event) { c.counts[e.Type]++ }

func newTestGame(t *testing.T, mutate func(*Options)) (*Game, *eventCounter) {
	t.Helper()
	opts := DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	g, err := NewGame(opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	c := &eventCounter{counts: map[event.EventType]int{}}
	g.EventDispatcher.Subscribe(c, event.AllTypes...)
	return g, c
}

// shortRoute leaks an enemy a few ticks after it spawns.
func shortRoute(o *Options) {
	o.Waypoints = []route.Point{{X: 0, Y: 300}, {X: 5, Y: 300}}
}

func TestNewGameDefaults(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if g.Lives != 20 || g.Money != 150 || g.Wave != 0 {
		t.Fatalf("expected 20 lives, 150 money, wave 0; got %d, %d, %d", g.Lives, g.Money, g.Wave)
	}
	if g.WaveInProgress() || g.IsGameOver() || g.Phase() != component.IdlePhase {
		t.Fatalf("fresh game should be idle, got %s", g.Phase())
	}
}

func TestNewGameRejectsBadOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Waypoints = opts.Waypoints[:1]
	if _, err := NewGame(opts); !errors.Is(err, route.ErrTooShort) {
		t.Errorf("expected ErrTooShort, got %v", err)
	}
	opts = DefaultOptions()
	opts.Catalog = nil
	if _, err := NewGame(opts); !errors.Is(err, defs.ErrInvalidCatalog) {
		t.Errorf("expected ErrInvalidCatalog, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no lives", func(o *Options) { o.Lives = 0 }},
		{"negative lives", func(o *Options) { o.Lives = -3 }},
		{"negative money", func(o *Options) { o.Money = -1 }},
		{"zero enemy radius", func(o *Options) { o.Enemy.Radius = 0 }},
		{"zero enemy speed", func(o *Options) { o.Enemy.BaseSpeed = 0 }},
		{"negative enemy speed", func(o *Options) { o.Enemy.BaseSpeed = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if _, err := NewGame(opts); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestNewGameAcceptsEmptyWalletAndOneLife(t *testing.T) {
	g, _ := newTestGame(t, func(o *Options) {
		o.Money = 0
		o.Lives = 1
		shortRoute(o)
	})
	if g.StartingLives() != 1 {
		t.Fatalf("StartingLives = %d, want 1", g.StartingLives())
	}
	g.StartWave()
	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		err = g.Advance()
	}
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("losing the only life must end the game, got %v (lives %d)", err, g.Lives)
	}
}

func TestWaveOneSpawnsFifteenAndEndsAfterLast(t *testing.T) {
	g, events := newTestGame(t, nil)
	if !g.StartWave() {
		t.Fatal("StartWave should succeed when idle")
	}
	if g.StartWave() {
		t.Fatal("second StartWave during a wave must be a no-op")
	}
	if g.Wave != 1 {
		t.Fatalf("expected wave 1, got %d", g.Wave)
	}

	ticks := 0
	for g.WaveInProgress() {
		if err := g.Advance(); err != nil {
			t.Fatalf("tick %d: %v", ticks, err)
		}
		ticks++
		if ticks > 10000 {
			t.Fatal("wave never ended")
		}
		if g.WaveInProgress() && len(g.World.Enemies) == 0 && g.WaveSystem.PendingSpawns(g.Session) == 0 {
			t.Fatal("wave still running with nothing left")
		}
	}

	if events.counts[event.EnemySpawned] != 15 {
		t.Errorf("expected 15 spawns, got %d", events.counts[event.EnemySpawned])
	}
	if events.counts[event.EnemyLeaked] != 15 || g.Lives != 5 {
		t.Errorf("without towers all 15 should leak: leaks %d, lives %d", events.counts[event.EnemyLeaked], g.Lives)
	}
	if events.counts[event.WaveEnded] != 1 {
		t.Errorf("expected one WaveEnded, got %d", events.counts[event.WaveEnded])
	}
	if !g.StartWave() || g.Wave != 2 {
		t.Error("next wave should be startable after the previous one ended")
	}
}

func TestWaveWaitsForPendingSpawns(t *testing.T) {
	g, events := newTestGame(t, shortRoute)
	g.StartWave()

	// 600ms между врагами: первый успевает уйти задолго до второго
	for i := 0; i < 20; i++ {
		if err := g.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	if len(g.World.Enemies) != 0 || events.counts[event.EnemyLeaked] != 1 {
		t.Fatalf("first enemy should have leaked, enemies %d leaks %d", len(g.World.Enemies), events.counts[event.EnemyLeaked])
	}
	if !g.WaveInProgress() {
		t.Fatal("wave must not end while spawns are pending")
	}
}

func TestGameOverOnTransition(t *testing.T) {
	g, events := newTestGame(t, func(o *Options) {
		shortRoute(o)
		o.Lives = 2
	})
	g.StartWave()

	var err error
	leaksBefore := 0
	for i := 0; i < 1000 && err == nil; i++ {
		leaksBefore = events.counts[event.EnemyLeaked]
		err = g.Advance()
		if err == nil && g.Lives <= 0 {
			t.Fatal("lives reached zero without game over")
		}
	}
	if !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if leaksBefore != 1 || g.Lives != 0 {
		t.Errorf("game over should come with the second leak: leaks before %d, lives %d", leaksBefore, g.Lives)
	}
	if !g.IsGameOver() || events.counts[event.GameOver] != 1 {
		t.Fatalf("expected game over phase and one GameOver event")
	}

	now, money := g.Now(), g.Money
	if err := g.Tick(now + time.Hour); !errors.Is(err, ErrGameOver) {
		t.Fatalf("ticks after game over must keep failing, got %v", err)
	}
	if g.Now() != now || g.Money != money || events.counts[event.GameOver] != 1 {
		t.Error("ticks after game over must not change anything")
	}
	if g.StartWave() || g.SelectTowerType(defs.TowerBasic) || g.AttemptPlacement(300, 300) {
		t.Error("intents after game over must be no-ops")
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	g, events := newTestGame(t, nil)
	g.SelectTowerType(defs.TowerBasic)
	g.AttemptPlacement(300, 300)
	g.StartWave()
	g.Advance()
	old := g.Session

	g.Reset()
	if g.Session == old {
		t.Fatal("reset must issue a new session")
	}
	if g.Lives != 20 || g.Money != 150 || g.Wave != 0 || g.WaveInProgress() {
		t.Fatalf("reset should restore the starting state")
	}
	if len(g.World.Towers) != 0 || len(g.World.Enemies) != 0 || g.Scheduler.Len() != 0 {
		t.Fatal("reset should clear the world and pending spawns")
	}

	spawned := events.counts[event.EnemySpawned]
	for i := 0; i < 100; i++ {
		g.Advance()
	}
	if events.counts[event.EnemySpawned] != spawned {
		t.Error("spawns of the old session leaked into the new one")
	}
}

func TestWaveWithTowersCreditsKills(t *testing.T) {
	g, events := newTestGame(t, func(o *Options) { o.Money = 10000 })
	spots := []struct {
		kind defs.TowerID
		x, y float64
	}{
		{defs.TowerCannon, 100, 200},
		{defs.TowerMortar, 60, 380},
		{defs.TowerFrost, 300, 200},
		{defs.TowerMachineGun, 250, 30},
	}
	for _, s := range spots {
		if !g.SelectTowerType(s.kind) || !g.AttemptPlacement(s.x, s.y) {
			t.Fatalf("could not place %s at (%v,%v)", s.kind, s.x, s.y)
		}
	}
	spent := 10000 - g.Money

	g.StartWave()
	for i := 0; i < 10000 && g.WaveInProgress(); i++ {
		if err := g.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	kills, leaks := events.counts[event.EnemyKilled], events.counts[event.EnemyLeaked]
	if kills+leaks != 15 {
		t.Fatalf("every enemy must be killed or leak once: %d + %d", kills, leaks)
	}
	if kills == 0 {
		t.Fatal("towers should kill something")
	}
	if want := 10000 - spent + kills*defs.DefaultEnemy.Bounty; g.Money != want {
		t.Errorf("expected money %d, got %d", want, g.Money)
	}
	if g.Lives != 20-leaks {
		t.Errorf("expected %d lives, got %d", 20-leaks, g.Lives)
	}
}
