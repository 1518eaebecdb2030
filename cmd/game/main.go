// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/audio"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	titled         state.State
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if cur := a.stateMachine.Current(); cur != a.titled {
		ebiten.SetWindowTitle(state.Title(cur))
		a.titled = cur
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	// --- Флаги командной строки ---
	devMode := flag.Bool("dev", false, "Start directly in the game state and serve pprof on localhost:6060")
	towersPath := flag.String("towers", "", "JSON tower catalog replacing the built-in one")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	if *devMode {
		go func() {
			log.Println(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	opts := app.DefaultOptions()
	if *towersPath != "" {
		catalog, err := defs.LoadTowerCatalog(*towersPath)
		if err != nil {
			log.Fatal(err)
		}
		opts.Catalog = catalog
	}
	game, err := app.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewSoundManager()
	sounds.SetMuted(*mute)
	if !*mute {
		if err := sounds.Initialize(); err != nil {
			// Играем без звука
			log.Printf("Звук недоступен: %v", err)
		}
	}
	defer sounds.Cleanup()
	audio.NewListener(sounds, game.EventDispatcher)

	face := basicfont.Face7x13
	sm := state.NewStateMachine() // Создаём машину состояний
	gameState := state.NewGameState(sm, game, face)
	if *devMode {
		sm.SetState(gameState)
	} else {
		sm.SetState(state.NewMenuState(sm, gameState, face))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(state.Title(sm.Current()))
	a.titled = sm.Current()
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
