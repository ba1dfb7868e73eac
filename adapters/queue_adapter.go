// File: adapters/queue_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
// Description:
//   Adapters implementing the api.Queue contract over the concrete
//   containers in ringbuf and deque, and over eapache's growable FIFO
//   queue for callers that want an unbounded queue without deque
//   semantics.
//
// Package adapters provides glue code between the core API contracts
// and the concrete container implementations.

package adapters

import (
	"github.com/eapache/queue"

	"github.com/momentics/tinydeque/api"
	"github.com/momentics/tinydeque/deque"
	"github.com/momentics/tinydeque/ringbuf"
)

// Ensure compile-time contract compliance.
var (
	_ api.Queue[any] = (*RingQueue[any])(nil)
	_ api.Queue[any] = (*HybridQueue[any])(nil)
	_ api.Queue[any] = (*EapacheQueue[any])(nil)
)

// RingQueue adapts a FixedRing to api.Queue. Bounded: Enqueue reports
// false when the ring is full.
type RingQueue[T any] struct {
	ring *ringbuf.FixedRing[T]
}

// NewRingQueue returns a bounded FIFO queue with the given capacity.
func NewRingQueue[T any](capacity int) *RingQueue[T] {
	return &RingQueue[T]{ring: ringbuf.NewFixedRing[T](capacity)}
}

// Enqueue adds an item at the back, returns false if full.
func (q *RingQueue[T]) Enqueue(item T) bool {
	return q.ring.TryPushBack(item) == nil
}

// Dequeue removes the oldest item; ok==false if empty.
func (q *RingQueue[T]) Dequeue() (T, bool) { return q.ring.PopFront() }

// Len returns the current number of items.
func (q *RingQueue[T]) Len() int { return q.ring.Len() }

// HybridQueue adapts a Hybrid deque to api.Queue. Unbounded: Enqueue
// always succeeds, spilling to heap storage past the inline capacity.
type HybridQueue[T any] struct {
	deque *deque.Hybrid[T]
}

// NewHybridQueue returns an unbounded FIFO queue with the given inline
// capacity before the first heap allocation.
func NewHybridQueue[T any](inlineCap int) *HybridQueue[T] {
	return &HybridQueue[T]{deque: deque.NewHybrid[T](inlineCap)}
}

// Enqueue adds an item at the back; never fails.
func (q *HybridQueue[T]) Enqueue(item T) bool {
	q.deque.PushBack(item)
	return true
}

// Dequeue removes the oldest item; ok==false if empty.
func (q *HybridQueue[T]) Dequeue() (T, bool) { return q.deque.PopFront() }

// Len returns the current number of items.
func (q *HybridQueue[T]) Len() int { return q.deque.Len() }

// EapacheQueue adapts github.com/eapache/queue to api.Queue, recovering
// element typing over its interface{} storage. Unbounded.
type EapacheQueue[T any] struct {
	queue *queue.Queue
}

// NewEapacheQueue returns an unbounded FIFO queue backed by an eapache
// ring queue.
func NewEapacheQueue[T any]() *EapacheQueue[T] {
	return &EapacheQueue[T]{queue: queue.New()}
}

// Enqueue adds an item at the back; never fails.
func (q *EapacheQueue[T]) Enqueue(item T) bool {
	q.queue.Add(item)
	return true
}

// Dequeue removes the oldest item; ok==false if empty.
func (q *EapacheQueue[T]) Dequeue() (item T, ok bool) {
	if q.queue.Length() == 0 {
		return item, false
	}
	return q.queue.Remove().(T), true
}

// Len returns the current number of items.
func (q *EapacheQueue[T]) Len() int { return q.queue.Length() }
