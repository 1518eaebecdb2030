package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/route"
)

// fakeGame counts what the systems report back.
type fakeGame struct {
	money  int
	lives  int
	killed []*component.Enemy
	leaked []*component.Enemy
}

func (g *fakeGame) CreditBounty(enemy *component.Enemy) {
	g.money += enemy.Bounty
	g.killed = append(g.killed, enemy)
}

func (g *fakeGame) LoseLife(enemy *component.Enemy) bool {
	g.leaked = append(g.leaked, enemy)
	before := g.lives
	g.lives--
	return before > 0 && g.lives <= 0
}

// eventLog records dispatched events in order.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	l := &eventLog{}
	d.Subscribe(l, event.AllTypes...)
	return d, l
}

// straightRoute runs left to right along y=100.
func straightRoute() *route.Route {
	return route.MustNew([]route.Point{{X: 0, Y: 100}, {X: 100, Y: 100}, {X: 200, Y: 100}})
}

func addEnemy(w *entity.World, x, y float64, health int, speed float64) *component.Enemy {
	e := component.NewEnemy(w.NewEntity(), x, y, health, speed, defs.DefaultEnemy)
	w.AddEnemy(e)
	return e
}

func addTower(w *entity.World, x, y float64, id defs.TowerID, level int) *component.Tower {
	archetype, ok := defs.DefaultCatalog().Get(id)
	if !ok {
		panic("unknown tower " + string(id))
	}
	t := component.NewTower(w.NewEntity(), x, y, 20, archetype)
	t.SetLevel(archetype, level)
	w.AddTower(t)
	return t
}
