package event

import "sync"

// Queue is a FIFO of input events. The terminal poller pushes from its
// own goroutine; the tick loop drains at tick boundaries, so the core
// itself never sees concurrent access.
type Queue struct {
	mu     sync.Mutex
	events []InputEvent
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event
func (q *Queue) Push(ev InputEvent) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue
func (q *Queue) Drain() []InputEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	drained := q.events
	q.events = nil
	return drained
}
