// cmd/tdsim/main.go
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"go-path-defense/internal/app"
	"go-path-defense/internal/autoplay"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/utils"
)

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	waves := flag.Int("waves", 0, "Stop after this many waves, 0 plays until game over")
	towersPath := flag.String("towers", "", "JSON tower catalog replacing the built-in one")
	weightsPath := flag.String("weights", "", "JSON build weights, e.g. [{\"tower_id\":\"BASIC\",\"weight\":3}]")
	flag.Parse()

	opts := app.DefaultOptions()
	if *towersPath != "" {
		catalog, err := defs.LoadTowerCatalog(*towersPath)
		if err != nil {
			log.Fatal(err)
		}
		opts.Catalog = catalog
	}
	var weights []defs.BuildWeight
	if *weightsPath == "" {
		weights = defs.DefaultBuildWeights
	} else {
		data, err := os.ReadFile(*weightsPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(data, &weights); err != nil {
			log.Fatalf("build weights %s: %v", *weightsPath, err)
		}
	}

	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}
	rng := utils.NewPRNGService(*seed)
	log.Printf("Сид %d, сессия %s", rng.Seed(), game.Session)

	last := autoplay.Run(game, autoplay.NewPlanner(rng, weights), *waves, func(r autoplay.WaveReport) {
		log.Printf("wave=%d lives=%d money=%d towers=%d ticks=%d", r.Wave, r.Lives, r.Money, r.Towers, r.Ticks)
	})
	if last.GameOver {
		log.Printf("Итог: игра окончена на волне %d", last.Wave)
		return
	}
	log.Printf("Итог: пройдено %d волн, жизней %d", last.Wave, last.Lives)
}
