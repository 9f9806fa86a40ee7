// Package queue provides the blocking FIFO that connects the sequence
// producer to its analyzers.
//
// Put blocks only while a bounded queue is full; Take blocks only while the
// queue is empty. Both return early with the context's error when the
// context ends, which is the only way to interrupt a blocked call.
package queue

import (
	"context"
	"sync"
)

// Queue is a thread-safe FIFO. A capacity <= 0 makes it unbounded.
//
// Waiters park on one-slot signal channels instead of a sync.Cond so they
// can also select on ctx.Done(). A goroutine that leaves items (or room)
// behind re-signals, so one wakeup is never lost between several waiters.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
	limit int

	notEmpty chan struct{}
	notFull  chan struct{}
}

// New returns an empty queue holding at most capacity items.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	initial := capacity
	if initial == 0 {
		initial = 64
	}
	return &Queue[T]{
		items:    make([]T, 0, initial),
		limit:    capacity,
		notEmpty: make(chan struct{}, 1),
		notFull:  make(chan struct{}, 1),
	}
}

// Put appends v at the tail, waiting for room if the queue is bounded and full.
func (q *Queue[T]) Put(ctx context.Context, v T) error {
	for {
		q.mu.Lock()
		if q.limit == 0 || len(q.items) < q.limit {
			q.items = append(q.items, v)
			room := q.limit > 0 && len(q.items) < q.limit
			q.mu.Unlock()
			signal(q.notEmpty)
			if room {
				signal(q.notFull)
			}
			return nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-q.notFull:
		}
	}
}

// Take removes and returns the head, waiting while the queue is empty.
func (q *Queue[T]) Take(ctx context.Context) (T, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			v := q.items[0]
			var zero T
			q.items[0] = zero // drop the reference held by the backing array
			if len(q.items) == 1 {
				q.items = q.items[:0]
			} else {
				q.items = q.items[1:]
			}
			left := len(q.items)
			q.mu.Unlock()
			if left > 0 {
				signal(q.notEmpty)
			}
			if q.limit > 0 {
				signal(q.notFull)
			}
			return v, nil
		}
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-q.notEmpty:
		}
	}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Cap returns the bound, or 0 for an unbounded queue.
func (q *Queue[T]) Cap() int { return q.limit }

// signal never blocks: a pending signal already covers this one.
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
