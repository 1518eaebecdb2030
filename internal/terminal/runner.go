// internal/terminal/runner.go
package terminal

import (
	"context"
	"errors"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Runner drives a Game from a terminal: one simulation tick per frame
// times the speed multiplier, input from keys and mouse.
type Runner struct {
	screen   tcell.Screen
	game     *app.Game
	renderer *Renderer

	cursor      Cell
	paused      bool
	speed       int // индекс в config.SpeedMultipliers
	lastButtons tcell.ButtonMask
}

func NewRunner(screen tcell.Screen, g *app.Game) *Runner {
	return &Runner{
		screen:   screen,
		game:     g,
		renderer: NewRenderer(screen, g.Route),
		cursor:   Cell{Col: GridCols / 2, Row: GridRows / 2},
	}
}

// Multiplier returns ticks per frame.
func (r *Runner) Multiplier() int {
	return config.SpeedMultipliers[r.speed]
}

// Handle applies one binding. It returns false when the runner should stop.
func (r *Runner) Handle(b Binding) bool {
	g := r.game
	switch b.Command {
	case CmdQuit:
		return false
	case CmdLeft:
		r.moveCursor(-1, 0)
	case CmdRight:
		r.moveCursor(1, 0)
	case CmdUp:
		r.moveCursor(0, -1)
	case CmdDown:
		r.moveCursor(0, 1)
	case CmdClick:
		g.Click(r.cursor.Center())
	case CmdSelectTower:
		if a := g.Catalog.At(b.Index); a != nil {
			g.SelectTowerType(a.ID)
		}
	case CmdUpgrade:
		g.UpgradeInspectedTower()
	case CmdSell:
		g.SellInspectedTower()
	case CmdStartWave:
		g.StartWave()
	case CmdCancel:
		g.CloseInspection()
		g.ClearSelection()
	case CmdPause:
		r.paused = !r.paused
	case CmdSpeed:
		r.speed = (r.speed + 1) % len(config.SpeedMultipliers)
	case CmdRestart:
		if g.IsGameOver() {
			g.Reset()
			r.paused = false
		}
	}
	return true
}

func (r *Runner) moveCursor(dc, dr int) {
	r.cursor.Col = clamp(r.cursor.Col+dc, 0, GridCols-1)
	r.cursor.Row = clamp(r.cursor.Row+dr, 0, GridRows-1)
}

// handleMouse reacts to button presses, not holds.
func (r *Runner) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ r.lastButtons
	r.lastButtons = buttons

	if x >= GridCols || y >= GridRows {
		return
	}
	r.cursor = Cell{Col: x, Row: y}
	switch {
	case pressed&tcell.Button1 != 0:
		r.game.Click(r.cursor.Center())
	case pressed&tcell.Button2 != 0:
		r.Handle(Binding{Command: CmdCancel, Index: -1})
	}
}

// Step runs one frame of simulation.
func (r *Runner) Step() {
	if r.paused || r.game.IsGameOver() {
		return
	}
	for i := 0; i < r.Multiplier(); i++ {
		if err := r.game.Advance(); errors.Is(err, app.ErrGameOver) {
			return
		}
	}
}

func (r *Runner) Draw() {
	view := View{Cursor: r.cursor, Paused: r.paused, Multiplier: r.Multiplier()}
	if p, ok := r.game.PreviewAt(r.cursor.Center()); ok {
		view.Preview = &p
	}
	r.renderer.Draw(r.game.Snapshot(), view)
}

// Run blocks until quit or ctx is done. The caller owns Init/Fini.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	defer r.screen.DisableMouse()

	ticker := time.NewTicker(config.TickInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !r.Handle(Resolve(ev.Key(), ev.Rune())) {
					return nil
				}
			case *tcell.EventMouse:
				r.handleMouse(ev)
			case *tcell.EventResize:
				r.screen.Sync()
			}
		case <-ticker.C:
			r.Step()
			r.Draw()
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
