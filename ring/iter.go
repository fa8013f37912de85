// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared chronological iterator over a ring's storage block. All engine
// variants reduce iteration to "count slots starting at a physical index,
// wrapping at the end of storage".

package ring

import "iter"

// chronological returns a restartable sequence of count elements of data
// beginning at physical index start, wrapping modulo len(data). The
// sequence is read-only and captures start/count at call time; each use
// of the returned Seq walks the same window again.
func chronological[T any](data []T, start, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := len(data)
		for i := 0; i < count; i++ {
			if !yield(data[(start+i)%n]) {
				return
			}
		}
	}
}

// snapshot copies the same window eagerly, in chronological order.
// Returns nil for an empty window.
func snapshot[T any](data []T, start, count int) []T {
	if count == 0 {
		return nil
	}
	out := make([]T, 0, count)
	n := len(data)
	for i := 0; i < count; i++ {
		out = append(out, data[(start+i)%n])
	}
	return out
}
