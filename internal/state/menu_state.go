// internal/state/menu_state.go
package state

import (
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — заставка перед игрой
type MenuState struct {
	sm   *StateMachine
	next State
	face font.Face
}

func NewMenuState(sm *StateMachine, next State, face font.Face) *MenuState {
	return &MenuState{sm: sm, next: next, face: face}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.SidebarColor)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	text.Draw(screen, "PATH DEFENSE", m.face, cx-42, cy-20, config.TextLightColor)
	text.Draw(screen, "press space to start", m.face, cx-70, cy+10, config.TextMutedColor)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
