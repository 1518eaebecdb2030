// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log"
	"time"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/pkg/route"

	"github.com/google/uuid"
)

// ErrGameOver is returned by Tick once the last life is lost. The game
// does not change after that; Reset starts a new session.
var ErrGameOver = errors.New("game over")

// ErrInvalidOptions is wrapped by NewGame when the wallet, lives or enemy
// template would make the game unwinnable or unlosable.
var ErrInvalidOptions = errors.New("invalid game options")

// Options configures a new game.
type Options struct {
	Catalog   *defs.Catalog
	Waypoints []route.Point
	Enemy     defs.EnemyTemplate
	Lives     int
	Money     int
}

// DefaultOptions returns the built-in catalog, map and starting wallet.
func DefaultOptions() Options {
	return Options{
		Catalog:   defs.DefaultCatalog(),
		Waypoints: config.PathWaypoints,
		Enemy:     defs.DefaultEnemy,
		Lives:     config.StartingLives,
		Money:     config.StartingMoney,
	}
}

// validate проверяет всё, кроме каталога и маршрута
func (o Options) validate() error {
	switch {
	case o.Lives <= 0:
		return fmt.Errorf("%w: lives %d must be positive", ErrInvalidOptions, o.Lives)
	case o.Money < 0:
		return fmt.Errorf("%w: money %d is negative", ErrInvalidOptions, o.Money)
	case o.Enemy.Radius <= 0:
		return fmt.Errorf("%w: enemy radius %v must be positive", ErrInvalidOptions, o.Enemy.Radius)
	case o.Enemy.BaseSpeed <= 0:
		return fmt.Errorf("%w: enemy base speed %v must be positive", ErrInvalidOptions, o.Enemy.BaseSpeed)
	}
	return nil
}

// Game holds the main game state and logic.
type Game struct {
	Catalog          *defs.Catalog
	Route            *route.Route
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Scheduler        *system.Scheduler
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	StateSystem      *system.StateSystem

	// Game state
	Session uuid.UUID // Меняется при каждом сбросе
	Lives   int
	Money   int
	Wave    int

	opts      Options
	now       time.Duration
	selected  defs.TowerID // Тип башни для постройки, "" если не выбран
	inspected *component.Tower
}

// NewGame initializes a new game instance.
func NewGame(opts Options) (*Game, error) {
	if err := opts.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	path, err := route.New(opts.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	g := &Game{
		Catalog:         opts.Catalog,
		Route:           path,
		World:           world,
		EventDispatcher: eventDispatcher,
		Scheduler:       scheduler,
		opts:            opts,
	}
	g.WaveSystem = system.NewWaveSystem(world, path, scheduler, eventDispatcher, opts.Enemy)
	g.MovementSystem = system.NewMovementSystem(world, path, eventDispatcher, g)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher, config.ProjectileSpeed, config.ProjectileRadius)
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher)
	g.StateSystem = system.NewStateSystem(eventDispatcher)
	g.reset()
	return g, nil
}

// MustNewGame is NewGame for options known to be valid.
func MustNewGame(opts Options) *Game {
	g, err := NewGame(opts)
	if err != nil {
		panic(err)
	}
	return g
}

// Reset discards the current session: entities, pending spawns, wallet,
// selection. Subscribers of EventDispatcher stay subscribed.
func (g *Game) Reset() {
	g.reset()
	log.Printf("Новая игра, сессия %s", g.Session)
}

func (g *Game) reset() {
	g.Scheduler.Clear()
	g.World.Clear()
	g.StateSystem.Reset()
	g.Session = uuid.New()
	g.Lives = g.opts.Lives
	g.Money = g.opts.Money
	g.Wave = 0
	g.now = 0
	g.selected = ""
	g.inspected = nil
}

// Tick advances the simulation to now. Order within a tick: due spawns,
// enemy movement and cleanup, tower fire, projectiles, wave completion.
func (g *Game) Tick(now time.Duration) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	g.now = now

	g.WaveSystem.Update(now, g.Session)
	if g.MovementSystem.Update(now) {
		g.endGame()
		return ErrGameOver
	}
	g.CombatSystem.Update(now)
	g.ProjectileSystem.Update(now)
	g.checkWaveEnd()
	return nil
}

// Advance runs one tick of config.TickInterval after the previous one.
func (g *Game) Advance() error {
	return g.Tick(g.now + config.TickInterval)
}

func (g *Game) checkWaveEnd() {
	if !g.WaveInProgress() || len(g.World.Enemies) > 0 || g.WaveSystem.PendingSpawns(g.Session) > 0 {
		return
	}
	log.Printf("Волна %d пройдена: жизни %d, деньги %d", g.Wave, g.Lives, g.Money)
	g.EventDispatcher.Emit(event.WaveEnded, event.WaveData{Definition: g.WaveSystem.Plan(g.Wave)})
}

func (g *Game) endGame() {
	g.Scheduler.Clear()
	g.selected = ""
	g.inspected = nil
	log.Printf("Игра окончена на волне %d", g.Wave)
	g.EventDispatcher.Emit(event.GameOver, event.GameOverData{Wave: g.Wave, Money: g.Money})
}

// --- interfaces.GameContext ---

func (g *Game) CreditBounty(enemy *component.Enemy) {
	g.Money += enemy.Bounty
}

func (g *Game) LoseLife(enemy *component.Enemy) bool {
	before := g.Lives
	g.Lives--
	return before > 0 && g.Lives <= 0
}

// --- Public Accessors ---

// StartingLives is what Reset restores Lives to.
func (g *Game) StartingLives() int { return g.opts.Lives }

// Now returns the simulated time of the last tick.
func (g *Game) Now() time.Duration { return g.now }

func (g *Game) Phase() component.Phase { return g.StateSystem.Current() }

func (g *Game) WaveInProgress() bool { return g.StateSystem.WaveInProgress() }

func (g *Game) IsGameOver() bool { return g.StateSystem.IsGameOver() }

// Selected returns the tower type chosen for placement.
func (g *Game) Selected() (defs.TowerID, bool) { return g.selected, g.selected != "" }

// Inspected returns the tower shown in the info panel, or nil.
func (g *Game) Inspected() *component.Tower { return g.inspected }
