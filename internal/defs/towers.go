// internal/defs/towers.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"go-path-defense/pkg/render"
)

// ErrInvalidCatalog is wrapped by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid tower catalog")

// TowerID identifies a tower archetype.
type TowerID string

const (
	TowerBasic      TowerID = "BASIC"
	TowerMachineGun TowerID = "MACHINE_GUN"
	TowerCannon     TowerID = "CANNON"
	TowerFrost      TowerID = "FROST"
	TowerMortar     TowerID = "MORTAR"
)

// EffectKind is the tag of an Effect.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSlow
	EffectSplash
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectSlow:
		return "slow"
	case EffectSplash:
		return "splash"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// Effect is the special behaviour a tier's shots carry. Only the fields that
// belong to Kind are meaningful: Factor and Duration for EffectSlow, Radius
// for EffectSplash.
type Effect struct {
	Kind     EffectKind
	Factor   float64
	Duration time.Duration
	Radius   float64
}

// NoEffect is a plain damaging shot.
func NoEffect() Effect { return Effect{Kind: EffectNone} }

// SlowEffect sets the target's speed to base*factor for duration.
func SlowEffect(factor float64, duration time.Duration) Effect {
	return Effect{Kind: EffectSlow, Factor: factor, Duration: duration}
}

// SplashEffect damages every enemy within radius of the impact point.
func SplashEffect(radius float64) Effect {
	return Effect{Kind: EffectSplash, Radius: radius}
}

func (e Effect) String() string {
	switch e.Kind {
	case EffectSlow:
		return fmt.Sprintf("slow x%.2f for %s", e.Factor, e.Duration)
	case EffectSplash:
		return fmt.Sprintf("splash %.0f", e.Radius)
	default:
		return "none"
	}
}

func (e Effect) validate() error {
	switch e.Kind {
	case EffectNone:
		return nil
	case EffectSlow:
		if e.Factor <= 0 || e.Factor > 1 {
			return fmt.Errorf("slow factor %.2f outside (0, 1]", e.Factor)
		}
		if e.Duration <= 0 {
			return fmt.Errorf("slow duration must be positive, got %s", e.Duration)
		}
		return nil
	case EffectSplash:
		if e.Radius <= 0 {
			return fmt.Errorf("splash radius must be positive, got %.1f", e.Radius)
		}
		return nil
	default:
		return fmt.Errorf("unknown effect kind %d", int(e.Kind))
	}
}

// LevelTier is one purchasable stage of an archetype.
type LevelTier struct {
	Cost     int
	Damage   int
	Range    float64
	Cooldown time.Duration
	Effect   Effect
}

// TowerArchetype holds all the static data for a specific type of tower.
// Levels is ordered; the tower's level is a 1-based index into it.
type TowerArchetype struct {
	ID     TowerID
	Name   string
	Color  color.RGBA
	Levels []LevelTier
}

// MaxLevel returns the highest purchasable level.
func (a *TowerArchetype) MaxLevel() int { return len(a.Levels) }

// Tier returns the stats of a 1-based level.
func (a *TowerArchetype) Tier(level int) LevelTier { return a.Levels[level-1] }

// BaseCost is the price of placing a level 1 tower.
func (a *TowerArchetype) BaseCost() int { return a.Levels[0].Cost }

func (a *TowerArchetype) validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: tower with empty id", ErrInvalidCatalog)
	}
	if a.Name == "" {
		return fmt.Errorf("%w: tower %s has no name", ErrInvalidCatalog, a.ID)
	}
	if len(a.Levels) == 0 {
		return fmt.Errorf("%w: tower %s has no levels", ErrInvalidCatalog, a.ID)
	}
	for i, tier := range a.Levels {
		if tier.Cost < 0 || tier.Damage < 0 {
			return fmt.Errorf("%w: tower %s level %d has negative cost or damage", ErrInvalidCatalog, a.ID, i+1)
		}
		if tier.Range <= 0 {
			return fmt.Errorf("%w: tower %s level %d has non-positive range", ErrInvalidCatalog, a.ID, i+1)
		}
		if tier.Cooldown < 0 {
			return fmt.Errorf("%w: tower %s level %d has negative cooldown", ErrInvalidCatalog, a.ID, i+1)
		}
		if err := tier.Effect.validate(); err != nil {
			return fmt.Errorf("%w: tower %s level %d: %v", ErrInvalidCatalog, a.ID, i+1, err)
		}
	}
	return nil
}

// Catalog is the ordered, read-only set of tower archetypes.
type Catalog struct {
	archetypes []*TowerArchetype
	index      map[TowerID]*TowerArchetype
}

// NewCatalog validates archetypes and builds a catalog preserving their order.
func NewCatalog(archetypes []TowerArchetype) (*Catalog, error) {
	if len(archetypes) == 0 {
		return nil, fmt.Errorf("%w: no towers defined", ErrInvalidCatalog)
	}
	c := &Catalog{index: make(map[TowerID]*TowerArchetype, len(archetypes))}
	for i := range archetypes {
		a := archetypes[i]
		a.Levels = append([]LevelTier(nil), a.Levels...)
		if err := a.validate(); err != nil {
			return nil, err
		}
		if _, dup := c.index[a.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tower id %s", ErrInvalidCatalog, a.ID)
		}
		c.archetypes = append(c.archetypes, &a)
		c.index[a.ID] = &a
	}
	return c, nil
}

// Validate re-checks every archetype. A zero Catalog is invalid.
func (c *Catalog) Validate() error {
	if c == nil || len(c.archetypes) == 0 {
		return fmt.Errorf("%w: no towers defined", ErrInvalidCatalog)
	}
	for _, a := range c.archetypes {
		if err := a.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Get looks up an archetype by id.
func (c *Catalog) Get(id TowerID) (*TowerArchetype, bool) {
	a, ok := c.index[id]
	return a, ok
}

// All returns the archetypes in shop order.
func (c *Catalog) All() []*TowerArchetype { return c.archetypes }

// Len returns the number of archetypes.
func (c *Catalog) Len() int { return len(c.archetypes) }

// At returns the i-th archetype in shop order, or nil when out of range.
func (c *Catalog) At(i int) *TowerArchetype {
	if i < 0 || i >= len(c.archetypes) {
		return nil
	}
	return c.archetypes[i]
}

// DefaultTowers is the built-in tower lineup.
var DefaultTowers = []TowerArchetype{
	{ID: TowerBasic, Name: "Basic", Color: render.MustParseHexColor("#0099cc"), Levels: []LevelTier{
		{Cost: 50, Damage: 25, Range: 150, Cooldown: 1000 * time.Millisecond},
		{Cost: 40, Damage: 50, Range: 165, Cooldown: 950 * time.Millisecond},
		{Cost: 80, Damage: 100, Range: 180, Cooldown: 900 * time.Millisecond},
	}},
	{ID: TowerMachineGun, Name: "Machine Gun", Color: render.MustParseHexColor("#f1c40f"), Levels: []LevelTier{
		{Cost: 75, Damage: 15, Range: 125, Cooldown: 400 * time.Millisecond},
		{Cost: 60, Damage: 25, Range: 135, Cooldown: 350 * time.Millisecond},
		{Cost: 120, Damage: 40, Range: 145, Cooldown: 300 * time.Millisecond},
	}},
	{ID: TowerCannon, Name: "Cannon", Color: render.MustParseHexColor("#34495e"), Levels: []LevelTier{
		{Cost: 125, Damage: 110, Range: 175, Cooldown: 2500 * time.Millisecond},
		{Cost: 100, Damage: 250, Range: 190, Cooldown: 2400 * time.Millisecond},
		{Cost: 200, Damage: 500, Range: 210, Cooldown: 2300 * time.Millisecond},
	}},
	{ID: TowerFrost, Name: "Frost", Color: render.MustParseHexColor("#3498db"), Levels: []LevelTier{
		{Cost: 90, Damage: 10, Range: 140, Cooldown: 1500 * time.Millisecond, Effect: SlowEffect(0.5, 1500*time.Millisecond)},
		{Cost: 70, Damage: 20, Range: 150, Cooldown: 1400 * time.Millisecond, Effect: SlowEffect(0.4, 2000*time.Millisecond)},
		{Cost: 140, Damage: 30, Range: 160, Cooldown: 1300 * time.Millisecond, Effect: SlowEffect(0.3, 2500*time.Millisecond)},
	}},
	{ID: TowerMortar, Name: "Mortar", Color: render.MustParseHexColor("#e67e22"), Levels: []LevelTier{
		{Cost: 150, Damage: 70, Range: 250, Cooldown: 4000 * time.Millisecond, Effect: SplashEffect(40)},
		{Cost: 125, Damage: 120, Range: 275, Cooldown: 3800 * time.Millisecond, Effect: SplashEffect(50)},
		{Cost: 250, Damage: 200, Range: 300, Cooldown: 3600 * time.Millisecond, Effect: SplashEffect(60)},
	}},
}

// DefaultCatalog returns a catalog built from DefaultTowers.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultTowers)
	if err != nil {
		panic(err)
	}
	return c
}
