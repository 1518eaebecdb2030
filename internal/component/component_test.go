package component

import (
	"testing"
	"time"

	"go-path-defense/internal/defs"
)

func TestApplySlowDoesNotCompound(t *testing.T) {
	e := NewEnemy(1, 0, 0, 100, 2, defs.DefaultEnemy)
	slow := defs.SlowEffect(0.5, 1500*time.Millisecond)

	e.ApplySlow(slow, 100*time.Millisecond)
	e.ApplySlow(slow, 100*time.Millisecond)

	if e.Speed != 1 {
		t.Fatalf("expected speed 1 (base*0.5), got %.3f", e.Speed)
	}
	if !e.IsSlowed() {
		t.Fatalf("expected enemy to report slowed")
	}
	if e.SlowedUntil != 1600*time.Millisecond {
		t.Fatalf("expected expiry at 1.6s, got %s", e.SlowedUntil)
	}
}

func TestSlowReapplicationResetsExpiry(t *testing.T) {
	e := NewEnemy(1, 0, 0, 100, 1, defs.DefaultEnemy)
	e.ApplySlow(defs.SlowEffect(0.3, 2500*time.Millisecond), 0)
	e.ApplySlow(defs.SlowEffect(0.5, 1500*time.Millisecond), time.Second)

	if e.Speed != 0.5 {
		t.Fatalf("expected the newest slow to replace the old one, speed %.2f", e.Speed)
	}
	if e.SlowedUntil != 2500*time.Millisecond {
		t.Fatalf("expected expiry 2.5s, got %s", e.SlowedUntil)
	}
}

func TestExpireSlow(t *testing.T) {
	e := NewEnemy(1, 0, 0, 100, 1, defs.DefaultEnemy)
	e.ApplySlow(defs.SlowEffect(0.5, time.Second), 0)

	e.ExpireSlow(time.Second)
	if e.Speed != 0.5 {
		t.Fatalf("slow must hold at exactly the expiry instant, speed %.2f", e.Speed)
	}
	e.ExpireSlow(time.Second + time.Millisecond)
	if e.Speed != 1 || e.IsSlowed() {
		t.Fatalf("expected base speed after expiry, got %.2f", e.Speed)
	}
}

func TestTakeDamageAndHealthRatio(t *testing.T) {
	e := NewEnemy(1, 0, 0, 80, 1, defs.DefaultEnemy)
	e.TakeDamage(20)
	if r := e.HealthRatio(); r != 0.75 {
		t.Fatalf("expected ratio 0.75, got %.2f", r)
	}
	e.TakeDamage(-50)
	if e.Health != 60 {
		t.Fatalf("negative damage must not heal, health %d", e.Health)
	}
	e.TakeDamage(100)
	if !e.IsDead() || e.Health != -40 || e.HealthRatio() != 0 {
		t.Fatalf("expected overkill to leave health at -40 and ratio 0, got %d/%.2f", e.Health, e.HealthRatio())
	}
}

func TestTowerLevelsAndCooldown(t *testing.T) {
	basic, _ := defs.DefaultCatalog().Get(defs.TowerBasic)
	tw := NewTower(7, 100, 100, 20, basic)
	if tw.Level != 1 || tw.Damage != 25 || tw.Range != 150 || tw.Cooldown != time.Second {
		t.Fatalf("unexpected level 1 stats %+v", tw)
	}
	if !tw.CanFire(0) {
		t.Fatalf("a fresh tower must be able to fire immediately")
	}
	tw.MarkFired(500 * time.Millisecond)
	if tw.CanFire(1500 * time.Millisecond) {
		t.Fatalf("cooldown requires strictly more than 1s to pass")
	}
	if !tw.CanFire(1501 * time.Millisecond) {
		t.Fatalf("expected tower ready after the cooldown")
	}

	tw.SetLevel(basic, 3)
	if tw.Damage != 100 || tw.Range != 180 || tw.Cooldown != 900*time.Millisecond {
		t.Fatalf("unexpected level 3 stats %+v", tw)
	}
	if !tw.Contains(110, 110) || tw.Contains(120, 120) {
		t.Fatalf("unexpected footprint hit test")
	}
}
