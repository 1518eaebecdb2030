// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"go-path-defense/pkg/render"
)

// towerDefinition is the on-disk form of a TowerArchetype.
type towerDefinition struct {
	ID     TowerID           `json:"id"`
	Name   string            `json:"name"`
	Color  string            `json:"color"`
	Levels []levelDefinition `json:"levels"`
}

type levelDefinition struct {
	Cost       int             `json:"cost"`
	Damage     int             `json:"damage"`
	Range      float64         `json:"range"`
	CooldownMs int             `json:"cooldown_ms"`
	Slow       *slowDefinition `json:"slow,omitempty"`
	Splash     *float64        `json:"splash,omitempty"`
}

type slowDefinition struct {
	Factor     float64 `json:"factor"`
	DurationMs int     `json:"duration_ms"`
}

func (d levelDefinition) toTier() (LevelTier, error) {
	tier := LevelTier{
		Cost:     d.Cost,
		Damage:   d.Damage,
		Range:    d.Range,
		Cooldown: time.Duration(d.CooldownMs) * time.Millisecond,
		Effect:   NoEffect(),
	}
	switch {
	case d.Slow != nil && d.Splash != nil:
		return LevelTier{}, fmt.Errorf("level declares both slow and splash")
	case d.Slow != nil:
		tier.Effect = SlowEffect(d.Slow.Factor, time.Duration(d.Slow.DurationMs)*time.Millisecond)
	case d.Splash != nil:
		tier.Effect = SplashEffect(*d.Splash)
	}
	return tier, nil
}

func (d towerDefinition) toArchetype() (TowerArchetype, error) {
	c, err := render.ParseHexColor(d.Color)
	if err != nil {
		return TowerArchetype{}, fmt.Errorf("tower %s: %w", d.ID, err)
	}
	a := TowerArchetype{ID: d.ID, Name: d.Name, Color: c}
	for i, ld := range d.Levels {
		tier, err := ld.toTier()
		if err != nil {
			return TowerArchetype{}, fmt.Errorf("tower %s level %d: %w", d.ID, i+1, err)
		}
		a.Levels = append(a.Levels, tier)
	}
	return a, nil
}

// ParseTowerCatalog decodes a JSON array of tower definitions.
func ParseTowerCatalog(data []byte) (*Catalog, error) {
	var towerDefs []towerDefinition
	if err := json.Unmarshal(data, &towerDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	archetypes := make([]TowerArchetype, 0, len(towerDefs))
	for _, def := range towerDefs {
		a, err := def.toArchetype()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
		}
		archetypes = append(archetypes, a)
	}
	return NewCatalog(archetypes)
}

// LoadTowerCatalog reads the tower configuration file and builds a Catalog.
func LoadTowerCatalog(path string) (*Catalog, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	catalog, err := ParseTowerCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("Loaded %d tower definitions from %s", catalog.Len(), path)
	return catalog, nil
}

// MarshalTowerCatalog encodes a catalog in the same format LoadTowerCatalog reads.
func MarshalTowerCatalog(c *Catalog) ([]byte, error) {
	out := make([]towerDefinition, 0, c.Len())
	for _, a := range c.All() {
		def := towerDefinition{ID: a.ID, Name: a.Name, Color: render.HexString(a.Color)}
		for _, tier := range a.Levels {
			ld := levelDefinition{
				Cost:       tier.Cost,
				Damage:     tier.Damage,
				Range:      tier.Range,
				CooldownMs: int(tier.Cooldown / time.Millisecond),
			}
			switch tier.Effect.Kind {
			case EffectSlow:
				ld.Slow = &slowDefinition{Factor: tier.Effect.Factor, DurationMs: int(tier.Effect.Duration / time.Millisecond)}
			case EffectSplash:
				r := tier.Effect.Radius
				ld.Splash = &r
			}
			def.Levels = append(def.Levels, ld)
		}
		out = append(out, def)
	}
	return json.MarshalIndent(out, "", "  ")
}
