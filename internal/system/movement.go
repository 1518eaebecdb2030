// internal/system/movement.go
package system

import (
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/pkg/route"
	"go-path-defense/pkg/utils"
)

// MovementSystem двигает врагов по маршруту и убирает убитых и дошедших
type MovementSystem struct {
	world           *entity.World
	route           *route.Route
	eventDispatcher *event.Dispatcher
	game            interfaces.GameContext // Используем интерфейс вместо прямой зависимости
}

func NewMovementSystem(world *entity.World, path *route.Route, eventDispatcher *event.Dispatcher, game interfaces.GameContext) *MovementSystem {
	return &MovementSystem{world: world, route: path, eventDispatcher: eventDispatcher, game: game}
}

// Update advances every enemy one step and culls the dead and the leaked.
// A dead enemy pays its bounty even if it also reached the end this tick.
// Returns true if a leak ended the game.
func (s *MovementSystem) Update(now time.Duration) (gameOver bool) {
	kept := s.world.Enemies[:0]
	for _, enemy := range s.world.Enemies {
		enemy.ExpireSlow(now)
		s.advance(enemy)

		switch {
		case enemy.IsDead():
			s.game.CreditBounty(enemy)
			s.eventDispatcher.Emit(event.EnemyKilled, event.EnemyData{Enemy: enemy})
		case enemy.PathIndex >= s.route.LastIndex():
			if s.game.LoseLife(enemy) {
				gameOver = true
			}
			s.eventDispatcher.Emit(event.EnemyLeaked, event.EnemyData{Enemy: enemy})
		default:
			kept = append(kept, enemy)
		}
	}
	for i := len(kept); i < len(s.world.Enemies); i++ {
		s.world.Enemies[i] = nil
	}
	s.world.Enemies = kept
	return gameOver
}

func (s *MovementSystem) advance(enemy *component.Enemy) {
	if enemy.PathIndex >= s.route.LastIndex() {
		return
	}
	target := s.route.Waypoint(enemy.PathIndex + 1)
	var arrived bool
	enemy.X, enemy.Y, arrived = utils.StepToward(enemy.X, enemy.Y, target.X, target.Y, enemy.Speed)
	if arrived {
		enemy.PathIndex++
	}
}
