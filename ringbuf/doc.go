// Package ringbuf
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity double-ended queue on circular-index arithmetic.
// FixedRing never allocates after construction; overflow is reported to
// the caller instead of growing. For storage that spills to the heap on
// overflow, see the deque package.
package ringbuf
