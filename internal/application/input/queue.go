// Package input implements the keyboard and mouse input resources.
//
// Raw events may be enqueued from any goroutine (hardware polling, remote
// transports, replays). Once per frame the engine calls Update, which
// drains the queue in FIFO order, updates the derived state (pressed flags,
// cursor position) and rebroadcasts every item as a typed event.
// Queries such as IsPressed reflect the state as of the last Update.
package input

import "sync"

// Queue is a FIFO of pending raw events, safe for concurrent producers and a
// single consumer.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends v.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

// Drain atomically takes every pending item and leaves the queue empty.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = make([]T, 0, cap(items))
	return items
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Driver feeds raw events from a backend into a resource's queue. Poll runs
// on the frame goroutine at the start of the resource's Update, so the
// events it pushes are dispatched in the same frame.
type Driver interface {
	Poll()
}

// DriverFunc adapts a function to Driver.
type DriverFunc func()

// Poll implements Driver.
func (f DriverFunc) Poll() { f() }
