// File: api/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity ring buffer contracts shared by all engine variants.

package api

import "iter"

// Ring is the contract every fixed-capacity ring engine satisfies.
// A Ring never grows, never blocks, and never fails a push: once every
// slot has been written, a push overwrites the oldest retained element.
//
// Rings are single-owner values. Callers needing concurrent access must
// synchronize externally; no engine takes locks internally.
type Ring[T any] interface {
	// Push writes an item into the next slot, overwriting the oldest
	// element once the buffer is saturated. Always succeeds.
	Push(item T)

	// Len returns the number of elements the engine reports as valid.
	// Unchecked engines report Cap unconditionally.
	Len() int

	// Cap returns the fixed capacity chosen at construction.
	Cap() int

	// Values returns a finite, restartable sequence of the valid
	// elements in chronological (oldest-first) order. Iteration is
	// read-only and reflects state at the time of the call.
	Values() iter.Seq[T]
}

// Drainable extends Ring with consuming reads, oldest-first.
type Drainable[T any] interface {
	Ring[T]

	// Pop removes and returns the oldest element; ok is false when empty.
	Pop() (T, bool)

	// Peek returns the oldest element without removing it.
	Peek() (T, bool)
}
