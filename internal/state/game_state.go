// internal/state/game_state.go
package state

import (
	"errors"
	"time"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/system/render"
	"go-path-defense/internal/ui"
	"go-path-defense/internal/ui/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*GameState)(nil)

// hotkeys выбора башни по порядку магазина
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *render.System
	sidebar       *ui.Sidebar
	fontFace      font.Face
	lastClickTime time.Time
}

func NewGameState(sm *StateMachine, g *app.Game, face font.Face) *GameState {
	return &GameState{
		sm:            sm,
		game:          g,
		renderer:      render.NewSystem(g.World, g.Route, g.Catalog, face),
		sidebar:       ui.NewSidebar(g.Catalog, g.StartingLives(), face),
		fontFace:      face,
		lastClickTime: time.Now(),
	}
}

// Game exposes the simulation driven by this state.
func (gs *GameState) Game() *app.Game {
	return gs.game
}

func (gs *GameState) Enter() {
	gs.sidebar.PauseButton.SetPaused(false)
}

func (gs *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.pause()
		return
	}

	gs.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= config.WorldWidth {
			if gs.handleSidebarClick(x, y) {
				return
			}
		} else {
			gs.game.Click(float64(x), float64(y))
		}
		gs.lastClickTime = time.Now()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Правый клик отменяет выбор и закрывает панель
		gs.game.CloseInspection()
		gs.game.ClearSelection()
	}

	// Один кадр = Multiplier тиков симуляции
	for i := 0; i < gs.sidebar.SpeedButton.Multiplier(); i++ {
		if err := gs.game.Advance(); errors.Is(err, app.ErrGameOver) {
			gs.sm.SetState(NewGameOverState(gs.sm, gs, gs.fontFace))
			return
		}
	}
}

func (gs *GameState) handleKeys() {
	for i, key := range towerKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if a := gs.game.Catalog.At(i); a != nil {
			gs.game.SelectTowerType(a.ID)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		gs.game.UpgradeInspectedTower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		gs.game.SellInspectedTower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		gs.game.StartWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		gs.toggleSpeed()
	}
}

// handleSidebarClick returns true when the click moved the state machine.
func (gs *GameState) handleSidebarClick(x, y int) bool {
	hit := gs.sidebar.HitTest(x, y, gs.game.Inspected() != nil)
	switch hit.Action {
	case layout.ActionSelectTower:
		if a := gs.game.Catalog.At(hit.Index); a != nil {
			gs.game.SelectTowerType(a.ID)
		}
	case layout.ActionStartWave:
		gs.game.StartWave()
	case layout.ActionUpgrade:
		gs.game.UpgradeInspectedTower()
	case layout.ActionSell:
		gs.game.SellInspectedTower()
	case layout.ActionCloseInspection:
		gs.game.CloseInspection()
	case layout.ActionToggleSpeed:
		gs.toggleSpeed()
	case layout.ActionTogglePause:
		if time.Since(gs.sidebar.PauseButton.LastToggleTime) >= config.ClickCooldown*time.Millisecond {
			gs.pause()
			return true
		}
	}
	return false
}

func (gs *GameState) toggleSpeed() {
	if time.Since(gs.sidebar.SpeedButton.LastToggleTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	gs.sidebar.SpeedButton.ToggleState()
}

func (gs *GameState) pause() {
	gs.sm.SetState(NewPauseState(gs.sm, gs, gs.fontFace))
}

func (gs *GameState) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.game.Inspected())

	if _, ok := gs.game.Selected(); ok {
		x, y := ebiten.CursorPosition()
		if p, ok := gs.game.PreviewAt(float64(x), float64(y)); ok && x < config.WorldWidth {
			gs.renderer.DrawPreview(screen, p.X, p.Y, p.Valid && p.Affordable, p.Range)
		}
	}

	gs.sidebar.Draw(screen, gs.game.Snapshot())
}

func (gs *GameState) Exit() {
	// Ничего не делаем при выходе
}
