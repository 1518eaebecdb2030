package defs

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBundledCatalogMatchesDefault(t *testing.T) {
	loaded, err := LoadTowerCatalog(filepath.Join("..", "..", "data", "towers.json"))
	if err != nil {
		t.Fatalf("failed to load bundled catalog: %v", err)
	}
	def := DefaultCatalog()
	if loaded.Len() != def.Len() {
		t.Fatalf("expected %d towers, got %d", def.Len(), loaded.Len())
	}
	for i := 0; i < def.Len(); i++ {
		if !reflect.DeepEqual(*loaded.At(i), *def.At(i)) {
			t.Errorf("tower %d differs:\nloaded  %+v\ndefault %+v", i, *loaded.At(i), *def.At(i))
		}
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	data, err := MarshalTowerCatalog(DefaultCatalog())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "towers.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	c, err := LoadTowerCatalog(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	mortar, ok := c.Get(TowerMortar)
	if !ok || mortar.Tier(2).Effect.Radius != 50 {
		t.Fatalf("mortar splash lost in round trip: %+v", mortar)
	}
}

func TestParseTowerCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"both effects", `[{"id":"X","name":"X","color":"#fff","levels":[{"cost":1,"range":5,"slow":{"factor":0.5,"duration_ms":10},"splash":4}]}]`},
		{"bad color", `[{"id":"X","name":"X","color":"blue","levels":[{"cost":1,"range":5}]}]`},
		{"no levels", `[{"id":"X","name":"X","color":"#fff","levels":[]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTowerCatalog([]byte(tt.data)); !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}

	if _, err := ParseTowerCatalog([]byte(`{not json`)); err == nil {
		t.Fatalf("expected syntax error")
	}
	if _, err := LoadTowerCatalog(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
