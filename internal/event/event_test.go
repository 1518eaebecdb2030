package event

import "testing"

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) OnEvent(e Event) {
	*r.log = append(*r.log, r.name+":"+string(e.Type))
}

func TestDispatchOrderAndFiltering(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.Subscribe(a, WaveStarted, WaveEnded)
	d.Subscribe(b, WaveStarted)

	d.Emit(WaveStarted, nil)
	d.Emit(WaveEnded, nil)
	d.Emit(GameOver, nil)

	want := []string{"a:WaveStarted", "b:WaveStarted", "a:WaveEnded"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestUnsubscribeRemovesFromAllTypes(t *testing.T) {
	var log []string
	d := NewDispatcher()
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	d.Subscribe(a, AllTypes...)
	d.Subscribe(b, EnemyKilled)

	d.Unsubscribe(a)
	for _, typ := range AllTypes {
		d.Emit(typ, nil)
	}
	if len(log) != 1 || log[0] != "b:EnemyKilled" {
		t.Fatalf("expected only b to hear EnemyKilled, got %v", log)
	}
}
