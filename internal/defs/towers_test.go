package defs

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultCatalogOrderAndTiers(t *testing.T) {
	c := DefaultCatalog()
	want := []TowerID{TowerBasic, TowerMachineGun, TowerCannon, TowerFrost, TowerMortar}
	if c.Len() != len(want) {
		t.Fatalf("expected %d archetypes, got %d", len(want), c.Len())
	}
	for i, id := range want {
		if got := c.At(i).ID; got != id {
			t.Errorf("archetype %d: expected %s, got %s", i, id, got)
		}
		if c.At(i).MaxLevel() != 3 {
			t.Errorf("archetype %s: expected 3 levels, got %d", id, c.At(i).MaxLevel())
		}
	}
	if c.At(-1) != nil || c.At(len(want)) != nil {
		t.Fatalf("expected nil for out of range shop slots")
	}

	basic, ok := c.Get(TowerBasic)
	if !ok {
		t.Fatalf("basic tower missing")
	}
	if basic.BaseCost() != 50 || basic.Tier(2).Cost != 40 {
		t.Fatalf("unexpected basic costs %d/%d", basic.BaseCost(), basic.Tier(2).Cost)
	}

	frost, _ := c.Get(TowerFrost)
	if e := frost.Tier(1).Effect; e.Kind != EffectSlow || e.Factor != 0.5 || e.Duration != 1500*time.Millisecond {
		t.Fatalf("unexpected frost tier 1 effect %+v", e)
	}
	mortar, _ := c.Get(TowerMortar)
	if e := mortar.Tier(3).Effect; e.Kind != EffectSplash || e.Radius != 60 {
		t.Fatalf("unexpected mortar tier 3 effect %+v", e)
	}
}

func TestNewCatalogValidation(t *testing.T) {
	valid := TowerArchetype{ID: "A", Name: "A", Levels: []LevelTier{{Cost: 10, Damage: 1, Range: 10}}}
	tests := []struct {
		name string
		in   []TowerArchetype
	}{
		{"empty catalog", nil},
		{"no levels", []TowerArchetype{{ID: "A", Name: "A"}}},
		{"no id", []TowerArchetype{{Name: "A", Levels: valid.Levels}}},
		{"duplicate id", []TowerArchetype{valid, valid}},
		{"zero range", []TowerArchetype{{ID: "A", Name: "A", Levels: []LevelTier{{Cost: 1}}}}},
		{"bad slow", []TowerArchetype{{ID: "A", Name: "A", Levels: []LevelTier{{Cost: 1, Range: 5, Effect: SlowEffect(1.5, time.Second)}}}}},
		{"bad splash", []TowerArchetype{{ID: "A", Name: "A", Levels: []LevelTier{{Cost: 1, Range: 5, Effect: SplashEffect(0)}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.in); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestNewCatalogCopiesLevels(t *testing.T) {
	levels := []LevelTier{{Cost: 10, Damage: 1, Range: 10}}
	c, err := NewCatalog([]TowerArchetype{{ID: "A", Name: "A", Levels: levels}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	levels[0].Cost = 999
	a, _ := c.Get("A")
	if a.BaseCost() != 10 {
		t.Fatalf("catalog must not alias caller slices, cost changed to %d", a.BaseCost())
	}
}

func TestEffectString(t *testing.T) {
	if s := NoEffect().String(); s != "none" {
		t.Errorf("unexpected %q", s)
	}
	if s := SplashEffect(40).String(); s != "splash 40" {
		t.Errorf("unexpected %q", s)
	}
	if s := SlowEffect(0.5, 1500*time.Millisecond).String(); s != "slow x0.50 for 1.5s" {
		t.Errorf("unexpected %q", s)
	}
}

func TestWaveFor(t *testing.T) {
	w := WaveFor(1, DefaultEnemy)
	if w.Count != 15 || w.Health != 70 || w.SpawnInterval != 600*time.Millisecond {
		t.Fatalf("unexpected wave 1 definition %+v", w)
	}
	if w.Speed < 1.0999 || w.Speed > 1.1001 {
		t.Fatalf("expected speed 1.1, got %v", w.Speed)
	}
	if w3 := WaveFor(3, DefaultEnemy); w3.Count != 25 || w3.Health != 110 {
		t.Fatalf("unexpected wave 3 definition %+v", w3)
	}
}

func TestCatalogValidate(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	var nilCatalog *Catalog
	if err := nilCatalog.Validate(); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("nil catalog: expected ErrInvalidCatalog, got %v", err)
	}
	if err := (&Catalog{}).Validate(); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("empty catalog: expected ErrInvalidCatalog, got %v", err)
	}
}
