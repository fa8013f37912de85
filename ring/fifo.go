// File: ring/fifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FIFO ring engine: head and tail cursors with consuming reads. Push
// overwrites the oldest element when saturated; Pop drains oldest-first.
// Cursors are monotonic counters reduced modulo capacity on access, so
// head-tail is always the live element count.

package ring

import (
	"iter"

	"github.com/momentics/staticring/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Ring[any]      = (*FIFO[any])(nil)
	_ api.Drainable[any] = (*FIFO[any])(nil)
)

// FIFO is a fixed-capacity overwrite-on-full queue. It retains up to
// Cap elements; pushing into a full ring silently drops the oldest.
type FIFO[T any] struct {
	data []T
	head int // total pushes, monotonic
	tail int // total drops and pops, monotonic; head-tail = live count
}

// NewFIFO constructs a FIFO ring with zero-valued slots.
// Panics if capacity is outside [MinCapacity, MaxCapacity].
func NewFIFO[T any](capacity int) *FIFO[T] {
	checkCapacity(capacity)
	return &FIFO[T]{data: make([]T, capacity)}
}

// Push appends item, overwriting the oldest element when full.
// Never fails.
func (r *FIFO[T]) Push(item T) {
	if r.head-r.tail == len(r.data) {
		r.tail++
	}
	r.data[r.head%len(r.data)] = item
	r.head++
}

// Pop removes and returns the oldest element; ok is false when empty.
func (r *FIFO[T]) Pop() (item T, ok bool) {
	if r.head == r.tail {
		return item, false
	}
	item = r.data[r.tail%len(r.data)]
	r.tail++
	return item, true
}

// Peek returns the oldest element without removing it.
func (r *FIFO[T]) Peek() (item T, ok bool) {
	if r.head == r.tail {
		return item, false
	}
	return r.data[r.tail%len(r.data)], true
}

// Len returns the number of elements currently queued.
func (r *FIFO[T]) Len() int { return r.head - r.tail }

// Cap returns the fixed capacity.
func (r *FIFO[T]) Cap() int { return len(r.data) }

// IsEmpty reports whether the queue holds no elements.
func (r *FIFO[T]) IsEmpty() bool { return r.head == r.tail }

// IsFull reports whether the next push will overwrite the oldest element.
func (r *FIFO[T]) IsFull() bool { return r.head-r.tail == len(r.data) }

// Values returns the queued elements oldest-first as a lazy, restartable
// sequence. Iteration does not consume elements.
func (r *FIFO[T]) Values() iter.Seq[T] {
	return chronological(r.data, r.tail%len(r.data), r.head-r.tail)
}

// Snapshot returns the queued elements oldest-first as a new slice,
// nil when empty.
func (r *FIFO[T]) Snapshot() []T {
	return snapshot(r.data, r.tail%len(r.data), r.head-r.tail)
}

// Clear drops all queued elements without touching storage.
func (r *FIFO[T]) Clear() {
	r.tail = r.head
}
