// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO queue contract served by the adapters package.

package api

// Queue is a FIFO queue contract.
type Queue[T any] interface {
	// Enqueue adds an item, returns false if full.
	Enqueue(item T) bool
	// Dequeue removes oldest item, returns false if empty.
	Dequeue() (T, bool)
	// Len returns current number of items.
	Len() int
}
