// internal/state/pause_state.go
package state

import (
	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует её под затемнением
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
	face          font.Face
}

func NewPauseState(sm *StateMachine, prevState *GameState, face font.Face) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		face:          face,
	}
}

func (s *PauseState) Enter() {
	s.previousState.sidebar.PauseButton.TogglePause()
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.sidebar.PauseButton.IsClicked(x, y)
	}
	if unpause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.WorldWidth, config.WorldHeight, config.GameOverOverlayColor, false)
	text.Draw(screen, "PAUSED", s.face, config.WorldWidth/2-21, config.WorldHeight/2, config.TextLightColor)
}

func (s *PauseState) Exit() {
	s.previousState.sidebar.PauseButton.TogglePause()
}
