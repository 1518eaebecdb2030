// internal/app/intents.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
)

// Player intents. Each one is a silent no-op when it cannot be carried out
// and reports whether anything changed.

// SelectTowerType toggles placement mode for id. Selecting the current type
// again, an unknown type or one the wallet cannot pay for leaves nothing
// selected. Any open inspection is closed.
func (g *Game) SelectTowerType(id defs.TowerID) bool {
	g.inspected = nil
	if g.IsGameOver() || g.selected == id {
		g.selected = ""
		return false
	}
	archetype, ok := g.Catalog.Get(id)
	if !ok || g.Money < PlacementCost(archetype) {
		g.selected = ""
		return false
	}
	g.selected = id
	return true
}

// ClearSelection leaves placement mode.
func (g *Game) ClearSelection() {
	g.selected = ""
}

// AttemptPlacement builds the selected tower at (x, y).
func (g *Game) AttemptPlacement(x, y float64) bool {
	if g.IsGameOver() || g.selected == "" {
		return false
	}
	archetype, ok := g.Catalog.Get(g.selected)
	if !ok {
		return false
	}
	cost := PlacementCost(archetype)
	if g.Money < cost || !g.IsValidPlacement(x, y) {
		return false
	}

	g.Money -= cost
	tower := component.NewTower(g.World.NewEntity(), x, y, config.TowerRadius, archetype)
	g.World.AddTower(tower)
	g.selected = ""
	g.EventDispatcher.Emit(event.TowerPlaced, event.TowerData{Tower: tower, Kind: archetype.ID, Amount: cost})
	return true
}

// Click is a click on the field: it places the selected tower, or inspects
// whatever tower is under the cursor.
func (g *Game) Click(x, y float64) bool {
	if g.selected != "" {
		return g.AttemptPlacement(x, y)
	}
	return g.InspectTowerAt(x, y)
}

// InspectTowerAt opens the tower under (x, y), or closes the inspection if
// there is none.
func (g *Game) InspectTowerAt(x, y float64) bool {
	if g.IsGameOver() {
		return false
	}
	g.inspected = g.World.TowerAt(x, y)
	if g.inspected == nil {
		return false
	}
	g.selected = ""
	return true
}

// CloseInspection closes the info panel.
func (g *Game) CloseInspection() {
	g.inspected = nil
}

// UpgradeInspectedTower buys the next tier of the inspected tower.
func (g *Game) UpgradeInspectedTower() bool {
	tower := g.inspected
	if g.IsGameOver() || tower == nil {
		return false
	}
	archetype, ok := g.Catalog.Get(tower.ArchetypeID)
	if !ok {
		return false
	}
	cost, ok := UpgradeCost(archetype, tower.Level)
	if !ok || g.Money < cost {
		return false
	}

	g.Money -= cost
	tower.SetLevel(archetype, tower.Level+1)
	g.EventDispatcher.Emit(event.TowerUpgraded, event.TowerData{Tower: tower, Kind: archetype.ID, Amount: cost})
	return true
}

// SellInspectedTower removes the inspected tower and refunds its value.
func (g *Game) SellInspectedTower() bool {
	tower := g.inspected
	if g.IsGameOver() || tower == nil {
		return false
	}
	archetype, ok := g.Catalog.Get(tower.ArchetypeID)
	if !ok || !g.World.RemoveTower(tower) {
		return false
	}

	refund := SellValue(archetype, tower.Level)
	g.Money += refund
	g.inspected = nil
	g.EventDispatcher.Emit(event.TowerSold, event.TowerData{Tower: tower, Kind: archetype.ID, Amount: refund})
	return true
}

// StartWave launches the next wave if none is running.
func (g *Game) StartWave() bool {
	if g.IsGameOver() || g.WaveInProgress() {
		return false
	}
	g.Wave++
	g.WaveSystem.StartWave(g.Wave, g.now, g.Session)
	return true
}
