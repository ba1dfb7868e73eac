// File: ringbuf/ringbuf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity array-backed deque addressed with wraparound indices.
// Single-owner, not thread-safe; callers needing cross-thread access
// must synchronize externally.

package ringbuf

import (
	"github.com/momentics/tinydeque/api"
	"github.com/momentics/tinydeque/internal/ringidx"
)

// FixedRing is a double-ended queue over storage allocated once at
// construction and never resized.
//
// head is the next free slot for a back push, tail the current front
// element. length alone distinguishes empty from full: head == tail
// holds in both states. Released slots are reset to the zero value of T
// so the ring never retains popped elements.
type FixedRing[T any] struct {
	buf    []T
	head   int
	tail   int
	length int
}

// NewFixedRing allocates an empty ring with the given capacity.
// A capacity of zero is legal: the ring is permanently both empty and
// full, and every push is rejected.
func NewFixedRing[T any](capacity int) *FixedRing[T] {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeInternal, "ring capacity must be non-negative").
			WithContext("capacity", capacity))
	}
	return &FixedRing[T]{buf: make([]T, capacity)}
}

// FromSlice builds a ring of the given capacity holding items front to
// back. Panics if the items exceed the capacity.
func FromSlice[T any](capacity int, items ...T) *FixedRing[T] {
	r := NewFixedRing[T](capacity)
	r.Extend(items...)
	return r
}

// Cap returns the fixed capacity.
func (r *FixedRing[T]) Cap() int { return len(r.buf) }

// Len returns the current number of elements.
func (r *FixedRing[T]) Len() int { return r.length }

// IsEmpty reports whether the ring holds no elements.
func (r *FixedRing[T]) IsEmpty() bool { return r.length == 0 }

// IsFull reports whether the ring holds Cap() elements.
func (r *FixedRing[T]) IsFull() bool { return r.length == len(r.buf) }

// TryPushBack appends item at the back. Returns api.ErrFull without
// mutating anything if the ring is full; the caller keeps the item.
func (r *FixedRing[T]) TryPushBack(item T) error {
	if r.IsFull() {
		return api.ErrFull
	}
	r.buf[r.head] = item
	r.head = ringidx.WrapAdd(r.head, 1, len(r.buf))
	r.length++
	return nil
}

// TryPushFront prepends item at the front. Returns api.ErrFull without
// mutating anything if the ring is full.
func (r *FixedRing[T]) TryPushFront(item T) error {
	if r.IsFull() {
		return api.ErrFull
	}
	r.tail = ringidx.WrapSub(r.tail, 1, len(r.buf))
	r.buf[r.tail] = item
	r.length++
	return nil
}

// PushBack appends item at the back. Panics if the ring is full; the
// caller must pre-verify capacity.
func (r *FixedRing[T]) PushBack(item T) {
	if err := r.TryPushBack(item); err != nil {
		panic(api.NewError(api.ErrCodeFull, "push onto full ring").
			WithContext("cap", r.Cap()))
	}
}

// PushFront prepends item at the front. Panics if the ring is full; the
// caller must pre-verify capacity.
func (r *FixedRing[T]) PushFront(item T) {
	if err := r.TryPushFront(item); err != nil {
		panic(api.NewError(api.ErrCodeFull, "push onto full ring").
			WithContext("cap", r.Cap()))
	}
}

// PopBack removes and returns the back element; ok==false if empty.
func (r *FixedRing[T]) PopBack() (item T, ok bool) {
	if r.length == 0 {
		return item, false
	}
	r.head = ringidx.WrapSub(r.head, 1, len(r.buf))
	item = r.buf[r.head]
	var zero T
	r.buf[r.head] = zero
	r.length--
	return item, true
}

// PopFront removes and returns the front element; ok==false if empty.
func (r *FixedRing[T]) PopFront() (item T, ok bool) {
	if r.length == 0 {
		return item, false
	}
	item = r.buf[r.tail]
	var zero T
	r.buf[r.tail] = zero
	r.tail = ringidx.WrapAdd(r.tail, 1, len(r.buf))
	r.length--
	return item, true
}

// At returns the element at logical index i (0 = front); ok==false if
// out of range.
func (r *FixedRing[T]) At(i int) (item T, ok bool) {
	if i < 0 || i >= r.length {
		return item, false
	}
	return r.buf[ringidx.WrapAdd(r.tail, i, len(r.buf))], true
}

// Ptr returns a pointer to the element at logical index i, or nil if out
// of range. The pointer grants exclusive access to that slot: it must not
// be held across any other operation on the ring.
func (r *FixedRing[T]) Ptr(i int) *T {
	if i < 0 || i >= r.length {
		return nil
	}
	return &r.buf[ringidx.WrapAdd(r.tail, i, len(r.buf))]
}

// Front returns the front element; ok==false if empty.
func (r *FixedRing[T]) Front() (T, bool) { return r.At(0) }

// Back returns the back element; ok==false if empty.
func (r *FixedRing[T]) Back() (item T, ok bool) {
	if r.length == 0 {
		return item, false
	}
	return r.At(r.length - 1)
}

// IsContiguous reports whether the contents occupy one unbroken run of
// the backing storage. A full ring with tail > 0 wraps even though
// head == tail again, so the test is on tail+length, not on head.
func (r *FixedRing[T]) IsContiguous() bool {
	return r.length == 0 || r.tail+r.length <= len(r.buf)
}

// AsSlices returns the contents as two ordered views whose concatenation
// is the front-to-back sequence, without copying. The second view is
// empty when the contents are contiguous. The views alias the ring's
// storage and stay valid until the next mutation.
func (r *FixedRing[T]) AsSlices() ([]T, []T) {
	return ringidx.Split(r.buf, r.tail, r.length)
}

// Truncate keeps the first n logical elements and releases the rest,
// back to front. No-op if n >= Len().
func (r *FixedRing[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= r.length {
		return
	}
	var zero T
	for r.length > n {
		r.head = ringidx.WrapSub(r.head, 1, len(r.buf))
		r.buf[r.head] = zero
		r.length--
	}
}

// Clear releases all elements.
func (r *FixedRing[T]) Clear() { r.Truncate(0) }

// Extend pushes items onto the back in order. Panics when an item does
// not fit; the caller must pre-verify capacity.
func (r *FixedRing[T]) Extend(items ...T) {
	for _, item := range items {
		r.PushBack(item)
	}
}

// Append drains other front-to-back onto the back of r, leaving other
// empty. Returns api.ErrCapacityExceeded with both rings untouched if
// the combined length exceeds r's capacity. Appending a ring to itself
// duplicates its contents; there is no separate ring to drain.
func (r *FixedRing[T]) Append(other *FixedRing[T]) error {
	if r.length+other.length > len(r.buf) {
		return api.ErrCapacityExceeded
	}
	if other == r {
		// Aliased: popping would consume the elements being appended,
		// so read the original run in place instead.
		n := r.length
		for i := 0; i < n; i++ {
			item, _ := r.At(i)
			r.PushBack(item)
		}
		return nil
	}
	for {
		item, ok := other.PopFront()
		if !ok {
			return nil
		}
		r.PushBack(item)
	}
}

// Clone returns a deep copy sharing no storage with r.
func (r *FixedRing[T]) Clone() *FixedRing[T] {
	c := &FixedRing[T]{
		buf:    make([]T, len(r.buf)),
		head:   r.head,
		tail:   r.tail,
		length: r.length,
	}
	copy(c.buf, r.buf)
	return c
}

// Contains reports whether the ring holds an element equal to v.
func Contains[T comparable](r *FixedRing[T], v T) bool {
	first, second := r.AsSlices()
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
