// File: deque/hybrid.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hybrid deque: starts on a fixed-capacity ring and migrates to growable
// storage the first time a push overflows. The migration ("spill") runs
// at most once per instance and never reverses.

package deque

import (
	"github.com/momentics/tinydeque/api"
	"github.com/momentics/tinydeque/ringbuf"
)

// Ensure compile-time contract compliance.
var _ api.Deque[any] = (*Hybrid[any])(nil)

// Hybrid is a two-state double-ended queue. Exactly one of stack and
// heap is non-nil; the nil check is the state tag. While on the stack
// arm every operation runs on the inline FixedRing; after a push exceeds
// its capacity the contents spill to a GrowDeque and all further
// operations run there. Not thread-safe.
type Hybrid[T any] struct {
	stack *ringbuf.FixedRing[T]
	heap  *GrowDeque[T]
}

// NewHybrid returns an empty hybrid deque with inline capacity for
// inlineCap elements before spilling.
func NewHybrid[T any](inlineCap int) *Hybrid[T] {
	return &Hybrid[T]{stack: ringbuf.NewFixedRing[T](inlineCap)}
}

// WithCapacity returns an empty hybrid deque sized for hint elements.
// A hint within the inline capacity starts on the stack arm; a larger
// hint starts directly on the heap arm, pre-sized to hint, so the
// predictable spill is paid up front instead of mid-stream.
func WithCapacity[T any](inlineCap, hint int) *Hybrid[T] {
	if hint > inlineCap {
		return &Hybrid[T]{heap: NewGrowDeque[T](hint)}
	}
	return NewHybrid[T](inlineCap)
}

// FromSlice builds a hybrid deque holding items front to back.
func FromSlice[T any](inlineCap int, items []T) *Hybrid[T] {
	h := WithCapacity[T](inlineCap, len(items))
	h.Extend(items...)
	return h
}

// Spilled reports whether the deque has migrated to the heap arm.
func (h *Hybrid[T]) Spilled() bool { return h.heap != nil }

// spill drains the stack arm front-to-back into a fresh GrowDeque sized
// for one more element than the current length, then switches arms.
// Runs at most once; the new state is only installed fully populated.
func (h *Hybrid[T]) spill() {
	g := NewGrowDeque[T](h.stack.Len() + 1)
	for {
		item, ok := h.stack.PopFront()
		if !ok {
			break
		}
		g.PushBack(item)
	}
	h.stack, h.heap = nil, g
}

// PushBack appends item at the back, spilling to the heap arm if the
// inline ring is full.
func (h *Hybrid[T]) PushBack(item T) {
	if h.heap != nil {
		h.heap.PushBack(item)
		return
	}
	if err := h.stack.TryPushBack(item); err != nil {
		h.spill()
		h.heap.PushBack(item)
	}
}

// PushFront prepends item at the front, spilling to the heap arm if the
// inline ring is full. The element that triggers the spill ends up at
// the front.
func (h *Hybrid[T]) PushFront(item T) {
	if h.heap != nil {
		h.heap.PushFront(item)
		return
	}
	if err := h.stack.TryPushFront(item); err != nil {
		h.spill()
		h.heap.PushFront(item)
	}
}

// PopBack removes and returns the back element; ok==false if empty.
func (h *Hybrid[T]) PopBack() (T, bool) {
	if h.heap != nil {
		return h.heap.PopBack()
	}
	return h.stack.PopBack()
}

// PopFront removes and returns the front element; ok==false if empty.
func (h *Hybrid[T]) PopFront() (T, bool) {
	if h.heap != nil {
		return h.heap.PopFront()
	}
	return h.stack.PopFront()
}

// At returns the element at logical index i (0 = front); ok==false if
// out of range.
func (h *Hybrid[T]) At(i int) (T, bool) {
	if h.heap != nil {
		return h.heap.At(i)
	}
	return h.stack.At(i)
}

// Ptr returns a pointer to the element at logical index i, or nil if
// out of range. The pointer is invalidated by the spill.
func (h *Hybrid[T]) Ptr(i int) *T {
	if h.heap != nil {
		return h.heap.Ptr(i)
	}
	return h.stack.Ptr(i)
}

// Front returns the front element; ok==false if empty.
func (h *Hybrid[T]) Front() (T, bool) {
	if h.heap != nil {
		return h.heap.Front()
	}
	return h.stack.Front()
}

// Back returns the back element; ok==false if empty.
func (h *Hybrid[T]) Back() (T, bool) {
	if h.heap != nil {
		return h.heap.Back()
	}
	return h.stack.Back()
}

// Len returns the current number of elements.
func (h *Hybrid[T]) Len() int {
	if h.heap != nil {
		return h.heap.Len()
	}
	return h.stack.Len()
}

// IsEmpty reports whether the deque holds no elements.
func (h *Hybrid[T]) IsEmpty() bool { return h.Len() == 0 }

// Cap returns the capacity of the active arm.
func (h *Hybrid[T]) Cap() int {
	if h.heap != nil {
		return h.heap.Cap()
	}
	return h.stack.Cap()
}

// AsSlices returns the contents of the active arm as two ordered views.
func (h *Hybrid[T]) AsSlices() ([]T, []T) {
	if h.heap != nil {
		return h.heap.AsSlices()
	}
	return h.stack.AsSlices()
}

// Truncate keeps the first n logical elements and releases the rest.
// Truncation never un-spills.
func (h *Hybrid[T]) Truncate(n int) {
	if h.heap != nil {
		h.heap.Truncate(n)
		return
	}
	h.stack.Truncate(n)
}

// Clear releases all elements.
func (h *Hybrid[T]) Clear() { h.Truncate(0) }

// Extend pushes items onto the back in order, spilling as needed.
func (h *Hybrid[T]) Extend(items ...T) {
	for _, item := range items {
		h.PushBack(item)
	}
}

// Clone returns a deep copy of the active arm, sharing no storage with h.
func (h *Hybrid[T]) Clone() *Hybrid[T] {
	if h.heap != nil {
		return &Hybrid[T]{heap: h.heap.Clone()}
	}
	return &Hybrid[T]{stack: h.stack.Clone()}
}

// Iter returns a double-ended iterator over the active arm. The deque
// must not be mutated while the iterator is live.
func (h *Hybrid[T]) Iter() Iter[T] {
	if h.heap != nil {
		return Iter[T]{spilled: true, heap: h.heap.Iter()}
	}
	return Iter[T]{stack: h.stack.Iter()}
}

// Contains reports whether d holds an element equal to v.
func Contains[T comparable](d api.Deque[T], v T) bool {
	first, second := d.AsSlices()
	for _, e := range first {
		if e == v {
			return true
		}
	}
	for _, e := range second {
		if e == v {
			return true
		}
	}
	return false
}

// Iter is the hybrid iterator: a two-arm variant dispatching on the
// spilled tag rather than through an interface, so iteration stays a
// direct call into the active arm's iterator.
type Iter[T any] struct {
	spilled bool
	stack   ringbuf.Iter[T]
	heap    GrowIter[T]
}

// Next returns the next element from the front; ok==false once exhausted.
func (it *Iter[T]) Next() (T, bool) {
	if it.spilled {
		return it.heap.Next()
	}
	return it.stack.Next()
}

// NextBack returns the next element from the back; ok==false once exhausted.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.spilled {
		return it.heap.NextBack()
	}
	return it.stack.NextBack()
}

// Len returns the exact number of elements not yet yielded.
func (it *Iter[T]) Len() int {
	if it.spilled {
		return it.heap.Len()
	}
	return it.stack.Len()
}
