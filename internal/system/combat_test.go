package system

import (
	"testing"
	"time"

	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

func newCombatFixture() (*CombatSystem, *entity.World, *eventLog) {
	world := entity.NewWorld()
	d, log := newTestDispatcher()
	return NewCombatSystem(world, d, 5, 4), world, log
}

func TestFindTargetUsesListOrder(t *testing.T) {
	cs, world, _ := newCombatFixture()
	tower := addTower(world, 100, 200, defs.TowerBasic, 1) // range 150
	addEnemy(world, 100, 400, 50, 1) // вне радиуса
	far := addEnemy(world, 100, 100, 50, 1)
	addEnemy(world, 100, 190, 50, 1) // ближе, но позже в списке

	if got := cs.FindTarget(tower); got != far {
		t.Fatalf("expected the first enemy in range (id %d), got %v", far.ID, got)
	}
}

func TestFindTargetRangeIsStrict(t *testing.T) {
	cs, world, _ := newCombatFixture()
	tower := addTower(world, 100, 200, defs.TowerBasic, 1)
	addEnemy(world, 250, 200, 50, 1)
	if got := cs.FindTarget(tower); got != nil {
		t.Fatalf("enemy exactly at range must not be targeted")
	}
}

func TestCombatRespectsCooldown(t *testing.T) {
	cs, world, log := newCombatFixture()
	addTower(world, 100, 200, defs.TowerBasic, 1) // cooldown 1s
	addEnemy(world, 100, 150, 50, 1)

	tests := []struct {
		now   time.Duration
		fired int
	}{
		{0, 1}, // ещё не стреляла
		{500 * time.Millisecond, 0},
		{time.Second, 0},
		{time.Second + time.Millisecond, 1},
		{2 * time.Second, 0},
	}
	for _, tt := range tests {
		if got := cs.Update(tt.now); got != tt.fired {
			t.Errorf("at %v expected %d shots, got %d", tt.now, tt.fired, got)
		}
	}
	if len(world.Projectiles) != 2 || log.count(event.ProjectileFired) != 2 {
		t.Errorf("expected 2 projectiles, got %d (%d events)", len(world.Projectiles), log.count(event.ProjectileFired))
	}
}

func TestCombatDoesNotFireWithoutTarget(t *testing.T) {
	cs, world, _ := newCombatFixture()
	tower := addTower(world, 100, 200, defs.TowerBasic, 1)
	if got := cs.Update(0); got != 0 {
		t.Fatalf("fired at nothing")
	}
	if tower.HasFired {
		t.Fatal("cooldown must not start without a shot")
	}
}

func TestProjectileCopiesTowerStats(t *testing.T) {
	cs, world, _ := newCombatFixture()
	tower := addTower(world, 100, 200, defs.TowerFrost, 1)
	target := addEnemy(world, 100, 150, 50, 1)
	cs.Update(0)

	archetype, _ := defs.DefaultCatalog().Get(defs.TowerFrost)
	tower.SetLevel(archetype, 3)

	proj := world.Projectiles[0]
	if proj.Target != target || proj.SourceID != tower.ID {
		t.Fatal("projectile should be bound to its target and tower")
	}
	if proj.Damage != 10 || proj.Effect.Factor != 0.5 || proj.Effect.Duration != 1500*time.Millisecond {
		t.Errorf("projectile must keep the level 1 stats, got damage %d effect %v", proj.Damage, proj.Effect)
	}
	if proj.X != 100 || proj.Y != 200 || proj.Speed != 5 || proj.Radius != 4 {
		t.Errorf("unexpected projectile %+v", proj)
	}
}
