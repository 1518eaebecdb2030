// internal/component/game_state.go
package component

// Phase — фаза игры
type Phase int

const (
	IdlePhase     Phase = iota // Между волнами
	WavePhase                  // Волна идёт
	GameOverPhase              // Жизни кончились
)

func (p Phase) String() string {
	switch p {
	case IdlePhase:
		return "idle"
	case WavePhase:
		return "wave"
	case GameOverPhase:
		return "game over"
	default:
		return "unknown"
	}
}
