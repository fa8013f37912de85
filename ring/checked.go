// File: ring/checked.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Checked ring engine: write cursor plus a saturating count of slots
// that have been written at least once. The count is what lets reads
// distinguish "never written" from "written and since overwritten".

package ring

import (
	"iter"

	"github.com/momentics/staticring/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*Checked[any])(nil)

// Checked is a fixed-capacity ring buffer that tracks its fill state.
// A fresh ring is empty; pushes fill it up to capacity, after which every
// push overwrites the oldest retained element. The count never shrinks
// except through Clear.
type Checked[T any] struct {
	data  []T
	head  int // next slot a push will occupy
	count int // slots written at least once, saturates at len(data)
}

// NewChecked constructs a checked ring with zero-valued slots.
// Panics if capacity is outside [MinCapacity, MaxCapacity].
func NewChecked[T any](capacity int) *Checked[T] {
	checkCapacity(capacity)
	return &Checked[T]{data: make([]T, capacity)}
}

// Push writes item into the next slot, overwriting the oldest element
// once the ring is full. Never fails.
func (r *Checked[T]) Push(item T) {
	r.data[r.head] = item
	r.head++
	if r.head == len(r.data) {
		r.head = 0
	}
	if r.count < len(r.data) {
		r.count++
	}
}

// Len returns the number of elements currently retained.
func (r *Checked[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Checked[T]) Cap() int { return len(r.data) }

// IsEmpty reports whether no element has been pushed since construction
// or the last Clear.
func (r *Checked[T]) IsEmpty() bool { return r.count == 0 }

// IsFull reports whether every slot holds real data, i.e. further pushes
// overwrite the oldest element.
func (r *Checked[T]) IsFull() bool { return r.count == len(r.data) }

// Oldest returns the least recent retained element; ok is false on an
// empty ring. A zero-valued T pushed by the caller is still reported
// with ok true — absence is signalled only through ok.
func (r *Checked[T]) Oldest() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	return r.data[r.oldestIndex()], true
}

// Values returns the retained elements oldest-first as a lazy,
// restartable sequence. It never mutates the ring; a fresh call always
// reflects the ring's state at call time.
func (r *Checked[T]) Values() iter.Seq[T] {
	return chronological(r.data, r.oldestIndex(), r.count)
}

// Snapshot returns the retained elements oldest-first as a new slice,
// nil when empty.
func (r *Checked[T]) Snapshot() []T {
	return snapshot(r.data, r.oldestIndex(), r.count)
}

// Clear resets the ring to its freshly constructed state. Storage is
// left in place; stale values become unreachable through Oldest and
// Values until overwritten.
func (r *Checked[T]) Clear() {
	r.head = 0
	r.count = 0
}

// oldestIndex maps the logical oldest element to its physical slot.
func (r *Checked[T]) oldestIndex() int {
	n := len(r.data)
	return (r.head - r.count + n) % n
}
