// internal/defs/build_weights.go
package defs

// BuildWeight is one entry of a weighted build plan: TowerID is an archetype
// and Weight its relative chance of being picked.
type BuildWeight struct {
	TowerID TowerID `json:"tower_id"`
	Weight  int     `json:"weight"`
}

// DefaultBuildWeights favours cheap towers early without ruling out the rest.
var DefaultBuildWeights = []BuildWeight{
	{TowerID: TowerBasic, Weight: 5},
	{TowerID: TowerMachineGun, Weight: 4},
	{TowerID: TowerCannon, Weight: 2},
	{TowerID: TowerFrost, Weight: 2},
	{TowerID: TowerMortar, Weight: 1},
}
