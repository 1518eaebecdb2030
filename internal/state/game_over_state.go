// internal/state/game_over_state.go
package state

import (
	"fmt"

	"go-path-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var _ State = (*GameOverState)(nil)

// GameOverState показывает итог и перезапускает игру
type GameOverState struct {
	stateMachine *StateMachine
	gameState    *GameState
	face         font.Face
}

func NewGameOverState(sm *StateMachine, gs *GameState, face font.Face) *GameOverState {
	return &GameOverState{stateMachine: sm, gameState: gs, face: face}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.restart()
	}
}

// restart начинает новую сессию, только пока экран итогов активен
func (s *GameOverState) restart() {
	if s.stateMachine.Current() != s {
		return
	}
	s.gameState.game.Reset()
	s.stateMachine.SetState(s.gameState)
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.gameState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.GameOverOverlayColor, false)

	g := s.gameState.game
	cx, cy := config.WorldWidth/2, config.WorldHeight/2
	text.Draw(screen, "GAME OVER", s.face, cx-31, cy-20, config.WaveStateColor)
	text.Draw(screen, fmt.Sprintf("reached wave %d with %d money", g.Wave, g.Money), s.face, cx-100, cy+4, config.TextLightColor)
	text.Draw(screen, "press enter to play again", s.face, cx-87, cy+28, config.TextMutedColor)
}

func (s *GameOverState) Exit() {}
