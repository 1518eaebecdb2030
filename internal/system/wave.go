// internal/system/wave.go
package system

import (
	"log"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/route"

	"github.com/google/uuid"
)

// WaveSystem schedules the staggered spawns of a wave. Spawns are queued on
// the Scheduler and inserted into the world when the tick driver polls it.
type WaveSystem struct {
	world           *entity.World
	route           *route.Route
	scheduler       *Scheduler
	eventDispatcher *event.Dispatcher
	enemy           defs.EnemyTemplate
}

func NewWaveSystem(world *entity.World, path *route.Route, scheduler *Scheduler, eventDispatcher *event.Dispatcher, enemy defs.EnemyTemplate) *WaveSystem {
	return &WaveSystem{
		world:           world,
		route:           path,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
		enemy:           enemy,
	}
}

// Plan returns the composition of wave n without scheduling anything.
func (s *WaveSystem) Plan(n int) defs.WaveDefinition {
	return defs.WaveFor(n, s.enemy)
}

// StartWave queues every spawn of wave number. The first enemy is due at
// now, each next one SpawnInterval later.
func (s *WaveSystem) StartWave(number int, now time.Duration, session uuid.UUID) defs.WaveDefinition {
	wave := s.Plan(number)
	for i := 0; i < wave.Count; i++ {
		due := now + time.Duration(i)*wave.SpawnInterval
		s.scheduler.Schedule(due, session, func(time.Duration) {
			s.spawnEnemy(wave)
		})
	}
	log.Printf("Волна %d: %d врагов, здоровье %d, скорость %.1f", wave.Number, wave.Count, wave.Health, wave.Speed)
	s.eventDispatcher.Emit(event.WaveStarted, event.WaveData{Definition: wave})
	return wave
}

// Update inserts the enemies that are due at now and returns how many.
func (s *WaveSystem) Update(now time.Duration, session uuid.UUID) int {
	return s.scheduler.Poll(now, session)
}

// PendingSpawns returns how many enemies of session are still queued.
func (s *WaveSystem) PendingSpawns(session uuid.UUID) int {
	return s.scheduler.Pending(session)
}

func (s *WaveSystem) spawnEnemy(wave defs.WaveDefinition) {
	start := s.route.Start()
	enemy := component.NewEnemy(s.world.NewEntity(), start.X, start.Y, wave.Health, wave.Speed, s.enemy)
	s.world.AddEnemy(enemy)
	s.eventDispatcher.Emit(event.EnemySpawned, event.EnemyData{Enemy: enemy})
}
