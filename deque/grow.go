// File: deque/grow.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Growable ring-backed deque, the heap arm of Hybrid. Storage doubles on
// overflow so pushes at both ends stay amortized O(1).

package deque

import (
	"github.com/momentics/tinydeque/api"
	"github.com/momentics/tinydeque/internal/ringidx"
)

// minGrowCap is the smallest storage allocated by a growth step.
const minGrowCap = 8

// Ensure compile-time contract compliance.
var _ api.Deque[any] = (*GrowDeque[any])(nil)

// GrowDeque is a double-ended queue over ring storage that is reallocated
// with doubling capacity whenever a push finds it full. Not thread-safe.
type GrowDeque[T any] struct {
	buf    []T
	tail   int
	length int
}

// NewGrowDeque returns an empty deque pre-sized to hold capacity elements
// before the first growth step. capacity 0 defers allocation to the first
// push.
func NewGrowDeque[T any](capacity int) *GrowDeque[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &GrowDeque[T]{buf: make([]T, capacity)}
}

// Cap returns the current storage capacity.
func (d *GrowDeque[T]) Cap() int { return len(d.buf) }

// Len returns the current number of elements.
func (d *GrowDeque[T]) Len() int { return d.length }

// IsEmpty reports whether the deque holds no elements.
func (d *GrowDeque[T]) IsEmpty() bool { return d.length == 0 }

// grow reallocates storage to at least need slots, unwrapping the
// contents to the start of the new buffer.
func (d *GrowDeque[T]) grow(need int) {
	newCap := len(d.buf) * 2
	if newCap < minGrowCap {
		newCap = minGrowCap
	}
	if newCap < need {
		newCap = need
	}
	buf := make([]T, newCap)
	first, second := ringidx.Split(d.buf, d.tail, d.length)
	n := copy(buf, first)
	copy(buf[n:], second)
	d.buf = buf
	d.tail = 0
}

// PushBack appends item at the back, growing storage if full.
func (d *GrowDeque[T]) PushBack(item T) {
	if d.length == len(d.buf) {
		d.grow(d.length + 1)
	}
	d.buf[ringidx.WrapAdd(d.tail, d.length, len(d.buf))] = item
	d.length++
}

// PushFront prepends item at the front, growing storage if full.
func (d *GrowDeque[T]) PushFront(item T) {
	if d.length == len(d.buf) {
		d.grow(d.length + 1)
	}
	d.tail = ringidx.WrapSub(d.tail, 1, len(d.buf))
	d.buf[d.tail] = item
	d.length++
}

// PopBack removes and returns the back element; ok==false if empty.
func (d *GrowDeque[T]) PopBack() (item T, ok bool) {
	if d.length == 0 {
		return item, false
	}
	idx := ringidx.WrapAdd(d.tail, d.length-1, len(d.buf))
	item = d.buf[idx]
	var zero T
	d.buf[idx] = zero
	d.length--
	return item, true
}

// PopFront removes and returns the front element; ok==false if empty.
func (d *GrowDeque[T]) PopFront() (item T, ok bool) {
	if d.length == 0 {
		return item, false
	}
	item = d.buf[d.tail]
	var zero T
	d.buf[d.tail] = zero
	d.tail = ringidx.WrapAdd(d.tail, 1, len(d.buf))
	d.length--
	return item, true
}

// At returns the element at logical index i (0 = front); ok==false if
// out of range.
func (d *GrowDeque[T]) At(i int) (item T, ok bool) {
	if i < 0 || i >= d.length {
		return item, false
	}
	return d.buf[ringidx.WrapAdd(d.tail, i, len(d.buf))], true
}

// Ptr returns a pointer to the element at logical index i, or nil if out
// of range. The pointer is invalidated by any growth step.
func (d *GrowDeque[T]) Ptr(i int) *T {
	if i < 0 || i >= d.length {
		return nil
	}
	return &d.buf[ringidx.WrapAdd(d.tail, i, len(d.buf))]
}

// Front returns the front element; ok==false if empty.
func (d *GrowDeque[T]) Front() (T, bool) { return d.At(0) }

// Back returns the back element; ok==false if empty.
func (d *GrowDeque[T]) Back() (item T, ok bool) {
	if d.length == 0 {
		return item, false
	}
	return d.At(d.length - 1)
}

// AsSlices returns the contents as two ordered views whose concatenation
// is the front-to-back sequence, without copying. Valid until the next
// mutation.
func (d *GrowDeque[T]) AsSlices() ([]T, []T) {
	return ringidx.Split(d.buf, d.tail, d.length)
}

// Truncate keeps the first n logical elements and releases the rest.
// No-op if n >= Len(). Storage is never shrunk.
func (d *GrowDeque[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for d.length > n {
		d.buf[ringidx.WrapAdd(d.tail, d.length-1, len(d.buf))] = zero
		d.length--
	}
}

// Clear releases all elements.
func (d *GrowDeque[T]) Clear() { d.Truncate(0) }

// Extend pushes items onto the back in order.
func (d *GrowDeque[T]) Extend(items ...T) {
	for _, item := range items {
		d.PushBack(item)
	}
}

// Clone returns a deep copy sharing no storage with d.
func (d *GrowDeque[T]) Clone() *GrowDeque[T] {
	c := &GrowDeque[T]{
		buf:    make([]T, len(d.buf)),
		tail:   d.tail,
		length: d.length,
	}
	copy(c.buf, d.buf)
	return c
}

// Iter returns a double-ended iterator over the deque. The deque must
// not be mutated while the iterator is live.
func (d *GrowDeque[T]) Iter() GrowIter[T] {
	return GrowIter[T]{
		buf:       d.buf,
		tail:      d.tail,
		head:      ringidx.WrapAdd(d.tail, d.length, len(d.buf)),
		remaining: d.length,
	}
}

// GrowIter walks a GrowDeque front-to-back (Next) and back-to-front
// (NextBack); both ends share one remaining count and an exhausted
// iterator never resumes.
type GrowIter[T any] struct {
	buf       []T
	tail      int
	head      int
	remaining int
}

// Next returns the next element from the front; ok==false once exhausted.
func (it *GrowIter[T]) Next() (item T, ok bool) {
	if it.remaining == 0 {
		return item, false
	}
	item = it.buf[it.tail]
	it.tail = ringidx.WrapAdd(it.tail, 1, len(it.buf))
	it.remaining--
	return item, true
}

// NextBack returns the next element from the back; ok==false once exhausted.
func (it *GrowIter[T]) NextBack() (item T, ok bool) {
	if it.remaining == 0 {
		return item, false
	}
	it.head = ringidx.WrapSub(it.head, 1, len(it.buf))
	it.remaining--
	return it.buf[it.head], true
}

// Len returns the exact number of elements not yet yielded.
func (it *GrowIter[T]) Len() int { return it.remaining }
