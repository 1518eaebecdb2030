// internal/audio/listener.go
package audio

import "go-path-defense/internal/event"

// Player is anything that can voice a cue.
type Player interface {
	Play(sound SoundType)
}

// Listener turns game events into sound cues.
type Listener struct {
	player Player
}

var _ event.Listener = (*Listener)(nil)

// NewListener subscribes a listener for every event that has a cue.
func NewListener(player Player, dispatcher *event.Dispatcher) *Listener {
	l := &Listener{player: player}
	dispatcher.Subscribe(l,
		event.ProjectileFired,
		event.EnemyKilled,
		event.EnemyLeaked,
		event.WaveStarted,
		event.WaveEnded,
		event.GameOver,
		event.TowerPlaced,
		event.TowerUpgraded,
	)
	return l
}

// CueFor maps an event type to its sound.
func CueFor(t event.EventType) (SoundType, bool) {
	switch t {
	case event.ProjectileFired:
		return SoundShot, true
	case event.EnemyKilled:
		return SoundKill, true
	case event.EnemyLeaked:
		return SoundLeak, true
	case event.WaveStarted:
		return SoundWaveStart, true
	case event.WaveEnded:
		return SoundWaveEnd, true
	case event.GameOver:
		return SoundGameOver, true
	case event.TowerPlaced, event.TowerUpgraded:
		return SoundBuild, true
	}
	return 0, false
}

func (l *Listener) OnEvent(e event.Event) {
	if sound, ok := CueFor(e.Type); ok {
		l.player.Play(sound)
	}
}
