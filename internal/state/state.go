// internal/state/state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// State — интерфейс для всех состояний. deltaTime в секундах,
// уже ограничен config.MaxDeltaTime.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние. Повторная установка текущего
// состояния ничего не делает, Enter не вызывается дважды.
func (sm *StateMachine) SetState(newState State) {
	if newState == sm.current {
		return
	}
	log.Printf("Состояние: %s -> %s", Title(sm.current), Title(newState))
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Title — подпись окна для состояния
func Title(s State) string {
	switch s.(type) {
	case nil:
		return "Path Defense"
	case *MenuState:
		return "Path Defense: Menu"
	case *PauseState:
		return "Path Defense: Paused"
	case *GameOverState:
		return "Path Defense: Game Over"
	default:
		return "Path Defense"
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
