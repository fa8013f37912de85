// File: ring/limits.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Capacity bounds enforced at construction time. A capacity outside
// [MinCapacity, MaxCapacity] is a construction bug, not a runtime
// condition, and panics the same way an out-of-range make() would.

package ring

import "fmt"

const (
	// MinCapacity is the smallest ring any engine will construct.
	MinCapacity = 1

	// MaxCapacity bounds ring size to a 16-bit range. Rings are meant
	// for inline, fixed-footprint state; anything larger wants a real
	// queue, not a ring.
	MaxCapacity = 1<<16 - 1
)

// checkCapacity validates a requested capacity, panicking outside bounds.
func checkCapacity(capacity int) {
	if capacity < MinCapacity || capacity > MaxCapacity {
		panic(fmt.Sprintf("ring: capacity %d out of range [%d, %d]", capacity, MinCapacity, MaxCapacity))
	}
}
