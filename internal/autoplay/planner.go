// internal/autoplay/planner.go

// Package autoplay plays the game without a player: random weighted builds
// between waves, then the wave runs to completion.
package autoplay

import (
	"errors"
	"log"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/utils"
)

const (
	placementAttempts = 200
	maxTicksPerWave   = 1 << 20
)

// Planner spends the wallet on towers chosen by weight.
type Planner struct {
	rng     *utils.PRNGService
	weights []defs.BuildWeight
}

func NewPlanner(rng *utils.PRNGService, weights []defs.BuildWeight) *Planner {
	return &Planner{rng: rng, weights: weights}
}

// Build places towers until the next pick is unaffordable or finds no free
// spot. It returns how many were placed.
func (p *Planner) Build(g *app.Game) int {
	placed := 0
	for {
		id := p.rng.ChooseWeighted(p.weights)
		if !g.SelectTowerType(id) {
			return placed
		}
		if !p.place(g) {
			g.ClearSelection()
			return placed
		}
		placed++
	}
}

func (p *Planner) place(g *app.Game) bool {
	m := config.PlacementMargin
	for i := 0; i < placementAttempts; i++ {
		x, y := p.rng.RandomPoint(m, m, config.WorldWidth-m, config.WorldHeight-m)
		if g.AttemptPlacement(x, y) {
			return true
		}
	}
	return false
}

// Upgrade buys tiers for towers in random order while money lasts.
func (p *Planner) Upgrade(g *app.Game) int {
	towers := append(g.World.Towers[:0:0], g.World.Towers...)
	upgraded := 0
	for len(towers) > 0 {
		i := p.rng.Intn(len(towers))
		t := towers[i]
		towers = append(towers[:i], towers[i+1:]...)

		if g.InspectTowerAt(t.X, t.Y) && g.UpgradeInspectedTower() {
			upgraded++
		}
	}
	g.CloseInspection()
	return upgraded
}

// WaveReport is the state after a wave ends.
type WaveReport struct {
	Wave     int
	Lives    int
	Money    int
	Towers   int
	Ticks    int
	GameOver bool
}

// Run alternates Build/Upgrade and waves until game over or maxWaves
// waves were played. maxWaves <= 0 means no limit.
func Run(g *app.Game, p *Planner, maxWaves int, report func(WaveReport)) WaveReport {
	var last WaveReport
	for maxWaves <= 0 || g.Wave < maxWaves {
		p.Upgrade(g)
		p.Build(g)
		if !g.StartWave() {
			break
		}

		ticks := 0
		over := false
		for g.WaveInProgress() && ticks < maxTicksPerWave {
			ticks++
			if err := g.Advance(); errors.Is(err, app.ErrGameOver) {
				over = true
				break
			}
		}
		if ticks == maxTicksPerWave {
			log.Printf("Волна %d не завершилась за %d тиков", g.Wave, ticks)
		}

		last = WaveReport{
			Wave:     g.Wave,
			Lives:    g.Lives,
			Money:    g.Money,
			Towers:   len(g.World.Towers),
			Ticks:    ticks,
			GameOver: over,
		}
		if report != nil {
			report(last)
		}
		if over {
			break
		}
	}
	return last
}
