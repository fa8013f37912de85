// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity, single-owner circular buffers for heapless hot paths.
// Storage is allocated exactly once at construction and never moves or
// grows; every operation is synchronous, lock-free by absence of sharing,
// and allocation-free.
//
// Three engine variants share one storage layout and one iterator:
//
//	Checked[T] — tracks how many slots hold real data; distinguishes
//	             empty/partial/full and offers Oldest and Clear.
//	Manx[T]    — write cursor only, no fill tracking; always reports
//	             itself full-size and may expose zero-valued slots
//	             before the first wraparound. The cheapest variant.
//	FIFO[T]    — head/tail pair with consuming Pop, overwriting the
//	             oldest element when saturated.
//
// None of the variants synchronize internally. Wrap access in a mutex or
// hand the value between goroutines if concurrent use is required.
package ring
