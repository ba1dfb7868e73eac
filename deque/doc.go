// Package deque
// Author: momentics <momentics@gmail.com>
//
// Double-ended queues with growable storage. GrowDeque grows by
// doubling; Hybrid starts on an inline fixed-capacity ring and spills
// to a GrowDeque once, the first time a push overflows.
package deque
