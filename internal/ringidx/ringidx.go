// File: internal/ringidx/ringidx.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Circular-index arithmetic shared by the ring-backed containers.
// All helpers tolerate size == 0 without dividing.

package ringidx

// Wrap normalizes i into [0, size). Negative inputs wrap from the end.
// size == 0 is the degenerate zero-capacity buffer; every index maps to 0.
func Wrap(i, size int) int {
	if size == 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}

// WrapAdd advances idx by delta modulo size.
func WrapAdd(idx, delta, size int) int {
	return Wrap(idx+delta, size)
}

// WrapSub moves idx back by delta modulo size.
func WrapSub(idx, delta, size int) int {
	return Wrap(idx-delta, size)
}

// Split derives the logical contents of a ring as two ordered views of buf.
// tail is the index of the front element and length the number of live
// elements; their concatenation is the front-to-back sequence. The second
// view is empty whenever the contents do not wrap past the end of buf.
// No copying takes place.
func Split[T any](buf []T, tail, length int) ([]T, []T) {
	if length == 0 {
		return buf[:0], buf[:0]
	}
	if end := tail + length; end <= len(buf) {
		return buf[tail:end], buf[:0]
	}
	return buf[tail:], buf[:tail+length-len(buf)]
}
