// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts and the error surface of the tinydeque library.
// Concrete containers live in ringbuf and deque; adapters bridges them
// (and third-party queues) onto these contracts.
package api
