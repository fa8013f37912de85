// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for CPU affinity. Ring engines are single-owner
// structures; pinning the owning thread keeps their hot loops on one
// core, which matters for cache-resident workloads and for stable
// benchmark numbers. Platform-specific implementations live in separate
// files guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to the given logical CPU. Returns an error on unsupported
// platforms; the goroutine stays thread-locked either way and must call
// Unpin when done.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	return setAffinityPlatform(cpuID)
}

// Unpin releases the goroutine's thread lock. OS-level affinity of the
// thread is left as-is; the thread returns to the scheduler pool.
func Unpin() {
	runtime.UnlockOSThread()
}
