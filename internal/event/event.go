// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события. Data holds one of the payload types from
// types.go, matching Type.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order, on the
// caller's goroutine. The simulation is single-threaded, so no locking.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for every given event type.
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe removes listener from every event type it was registered for.
func (d *Dispatcher) Unsubscribe(listener Listener) {
	for t, listeners := range d.listeners {
		kept := listeners[:0]
		for _, l := range listeners {
			if l != listener {
				kept = append(kept, l)
			}
		}
		d.listeners[t] = kept
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit is shorthand for Dispatch(Event{Type: t, Data: data}).
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	d.Dispatch(Event{Type: t, Data: data})
}
