// internal/system/state.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

// StateSystem следит за фазой игры
type StateSystem struct {
	phase           component.Phase
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{phase: component.IdlePhase, eventDispatcher: eventDispatcher}
	eventDispatcher.Subscribe(ss, event.WaveStarted, event.WaveEnded, event.GameOver)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.phase == component.GameOverPhase {
		return // из конца игры выхода нет, только новая сессия
	}
	switch e.Type {
	case event.WaveStarted:
		s.switchTo(component.WavePhase)
	case event.WaveEnded:
		s.switchTo(component.IdlePhase)
	case event.GameOver:
		s.switchTo(component.GameOverPhase)
	}
}

func (s *StateSystem) switchTo(phase component.Phase) {
	if s.phase == phase {
		return
	}
	log.Printf("Фаза: %s -> %s", s.phase, phase)
	s.phase = phase
}

// Reset puts the machine back to idle for a fresh session.
func (s *StateSystem) Reset() {
	s.phase = component.IdlePhase
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

func (s *StateSystem) WaveInProgress() bool {
	return s.phase == component.WavePhase
}

func (s *StateSystem) IsGameOver() bool {
	return s.phase == component.GameOverPhase
}
