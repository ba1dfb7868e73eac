// File: api/deque.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for growable double-ended queues.

package api

// Deque is the growable double-ended queue contract.
//
// Pushes at either end always succeed, growing storage as needed with
// amortized O(1) cost. Logical index 0 is the front element. AsSlices
// exposes the contents as at most two zero-copy views whose concatenation
// is the front-to-back sequence; the views stay valid until the next
// mutation. Implementations are not safe for concurrent use.
type Deque[T any] interface {
	// PushBack appends an item at the back.
	PushBack(item T)
	// PushFront prepends an item at the front.
	PushFront(item T)
	// PopBack removes and returns the back item; ok==false if empty.
	PopBack() (T, bool)
	// PopFront removes and returns the front item; ok==false if empty.
	PopFront() (T, bool)
	// At returns the item at logical index i; ok==false if out of range.
	At(i int) (T, bool)
	// Len returns the current number of items.
	Len() int
	// Cap returns the current storage capacity.
	Cap() int
	// Truncate keeps the first n items and releases the rest.
	Truncate(n int)
	// AsSlices returns the contents as two ordered views.
	AsSlices() ([]T, []T)
}
