// File: ringbuf/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended iterator over a FixedRing.

package ringbuf

import "github.com/momentics/tinydeque/internal/ringidx"

// Iter walks a ring front-to-back (Next) and back-to-front (NextBack).
// The two ends share one remaining count, so interleaved calls meet in
// the middle and an exhausted iterator never resumes. Iteration reads
// the ring's storage in place: the ring must not be mutated while an
// iterator is live.
type Iter[T any] struct {
	buf       []T
	tail      int
	head      int
	remaining int
}

// Iter returns an iterator positioned at both ends of the ring.
func (r *FixedRing[T]) Iter() Iter[T] {
	return Iter[T]{buf: r.buf, tail: r.tail, head: r.head, remaining: r.length}
}

// Next returns the next element from the front; ok==false once exhausted.
func (it *Iter[T]) Next() (item T, ok bool) {
	if it.remaining == 0 {
		return item, false
	}
	item = it.buf[it.tail]
	it.tail = ringidx.WrapAdd(it.tail, 1, len(it.buf))
	it.remaining--
	return item, true
}

// NextBack returns the next element from the back; ok==false once exhausted.
func (it *Iter[T]) NextBack() (item T, ok bool) {
	if it.remaining == 0 {
		return item, false
	}
	it.head = ringidx.WrapSub(it.head, 1, len(it.buf))
	it.remaining--
	return it.buf[it.head], true
}

// Len returns the exact number of elements not yet yielded.
func (it *Iter[T]) Len() int { return it.remaining }
