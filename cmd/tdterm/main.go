// cmd/tdterm/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"go-path-defense/internal/app"
	"go-path-defense/internal/audio"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, tcell.NewScreen))
}

// run returns the process exit code. Until the screen is up, logs go to
// stderr so setup failures stay visible.
func run(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) int {
	log.SetOutput(stderr)

	fs := flag.NewFlagSet("tdterm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	towersPath := fs.String("towers", "", "JSON tower catalog replacing the built-in one")
	sound := fs.Bool("sound", false, "Play sound cues")
	logPath := fs.String("log", "", "Write logs to this file instead of discarding them")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Printf("Не удалось открыть лог: %v", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}

	opts := app.DefaultOptions()
	if *towersPath != "" {
		catalog, err := defs.LoadTowerCatalog(*towersPath)
		if err != nil {
			log.Printf("Каталог башен: %v", err)
			return 1
		}
		opts.Catalog = catalog
	}
	game, err := app.NewGame(opts)
	if err != nil {
		log.Print(err)
		return 1
	}

	if *sound {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Звук недоступен: %v", err)
		}
		defer sounds.Cleanup()
		audio.NewListener(sounds, game.EventDispatcher)
	}

	screen, err := newScreen()
	if err != nil {
		log.Printf("Терминал: %v", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		log.Printf("Терминал: %v", err)
		return 1
	}

	// Терминал занят экраном, лог пишем в файл или никуда
	log.SetOutput(logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = terminal.NewRunner(screen, game).Run(ctx)
	screen.Fini()
	log.SetOutput(stderr)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Print(err)
		return 1
	}
	return 0
}
