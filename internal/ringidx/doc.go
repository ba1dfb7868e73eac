// Package ringidx
// Author: momentics <momentics@gmail.com>
//
// Pure index-normalization helpers for circular buffers: wrapping
// add/sub in [0, size) and zero-copy derivation of the two slice views
// of a ring's logical contents.
package ringidx
