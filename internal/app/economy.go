// internal/app/economy.go
package app

import (
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

// PlacementCost is the price of a level 1 tower.
func PlacementCost(archetype *defs.TowerArchetype) int {
	return archetype.BaseCost()
}

// UpgradeCost is the price of the tier after level. ok is false at max level.
func UpgradeCost(archetype *defs.TowerArchetype, level int) (cost int, ok bool) {
	if level >= archetype.MaxLevel() {
		return 0, false
	}
	return archetype.Levels[level].Cost, true
}

// TotalSpent sums the cost of every tier bought up to level.
func TotalSpent(archetype *defs.TowerArchetype, level int) int {
	total := 0
	for i := 0; i < level && i < archetype.MaxLevel(); i++ {
		total += archetype.Levels[i].Cost
	}
	return total
}

// SellValue refunds 70% of everything spent on the tower, rounded down.
func SellValue(archetype *defs.TowerArchetype, level int) int {
	return TotalSpent(archetype, level) * config.SellRefundPercent / 100
}
