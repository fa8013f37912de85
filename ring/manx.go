// File: ring/manx.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Manx ring engine: a write cursor and nothing else. Named for the
// tailless cat — this ring has no tail cursor and no fill count. It is
// the variant to reach for when the per-push cost of bookkeeping is
// unacceptable and the caller can guarantee, by construction, that the
// ring is saturated before anyone reads it.

package ring

import (
	"iter"

	"github.com/momentics/staticring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Manx[any])(nil)

// Manx is a fixed-capacity ring buffer without fill tracking. It always
// reports itself full-size: Len equals Cap regardless of how many pushes
// have happened, and iteration visits every slot. Slots never written
// still hold T's zero value — telling those apart from real data is the
// caller's responsibility and the documented cost of this variant.
type Manx[T any] struct {
	data []T
	head int // next slot a push will occupy
}

// NewManx constructs a manx ring with zero-valued slots.
// Panics if capacity is outside [MinCapacity, MaxCapacity].
func NewManx[T any](capacity int) *Manx[T] {
	checkCapacity(capacity)
	return &Manx[T]{data: make([]T, capacity)}
}

// Push writes item into the next slot. Never fails; once the cursor has
// wrapped, every push overwrites the oldest slot.
func (r *Manx[T]) Push(item T) {
	r.data[r.head] = item
	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
}

// Len returns the capacity. A manx ring has no notion of emptiness and
// reports itself full at all times.
func (r *Manx[T]) Len() int { return len(r.data) }

// Cap returns the fixed capacity.
func (r *Manx[T]) Cap() int { return len(r.data) }

// Cursor returns the physical index the next push will occupy.
// Callers that need real fill state can count pushes alongside.
func (r *Manx[T]) Cursor() int { return r.head }

// Values returns all slots oldest-to-newest by cursor position as a
// lazy, restartable sequence. Before the first wraparound the leading
// slots yield T's zero value.
func (r *Manx[T]) Values() iter.Seq[T] {
	return chronological(r.data, r.head, len(r.data))
}

// Slots returns the underlying storage in physical order. The returned
// slice aliases the ring's storage; treat it as read-only.
func (r *Manx[T]) Slots() []T { return r.data }

// Reset reinitializes the ring: every slot back to T's zero value and
// the cursor to 0. Unlike Checked.Clear this must touch all storage —
// with no fill count there is no cheap logical reset.
func (r *Manx[T]) Reset() {
	var zero T
	for i := range r.data {
		r.data[i] = zero
	}
	r.head = 0
}
