// internal/system/scheduler.go
package system

import (
	"container/heap"
	"time"

	"github.com/google/uuid"
)

// task — отложенный вызов, привязанный к игровой сессии
type task struct {
	due     time.Duration
	seq     uint64 // порядок постановки, разрешает равные due
	session uuid.UUID
	run     func(due time.Duration)
}

// taskQueue — min-heap по (due, seq)
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x interface{}) {
	*q = append(*q, x.(*task))
}
func (q *taskQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[0 : n-1]
	return item
}

// Scheduler is a queue of callbacks keyed by simulated time. Nothing runs on
// its own: the tick driver calls Poll, so callbacks never interleave with a
// tick. Every task belongs to a session; tasks of any other session are
// discarded when they come due, which is how a reset cancels old spawns.
type Scheduler struct {
	queue taskQueue
	seq   uint64
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.queue)
	return s
}

// Schedule queues run to be called by the first Poll at or after due.
// Tasks with equal due run in the order they were scheduled.
func (s *Scheduler) Schedule(due time.Duration, session uuid.UUID, run func(due time.Duration)) {
	s.seq++
	heap.Push(&s.queue, &task{due: due, seq: s.seq, session: session, run: run})
}

// Poll runs every task of session that is due at or before now and returns
// how many ran. Due tasks of other sessions are dropped.
func (s *Scheduler) Poll(now time.Duration, session uuid.UUID) int {
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(*task)
		if t.session != session {
			continue
		}
		t.run(t.due)
		ran++
	}
	return ran
}

// Pending returns the number of queued tasks belonging to session.
func (s *Scheduler) Pending(session uuid.UUID) int {
	n := 0
	for _, t := range s.queue {
		if t.session == session {
			n++
		}
	}
	return n
}

// Len returns the number of queued tasks across all sessions.
func (s *Scheduler) Len() int { return s.queue.Len() }

// NextDue reports when the earliest queued task is due.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if s.queue.Len() == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Clear drops every queued task.
func (s *Scheduler) Clear() {
	for i := range s.queue {
		s.queue[i] = nil
	}
	s.queue = s.queue[:0]
}
