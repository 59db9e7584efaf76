// File: internal/affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Best-effort pinning of the calling goroutine's OS thread to a CPU.
// Used by benchmarks to get stable single-owner measurements; never
// load-bearing for correctness.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that
// thread to cpu. Returns false when pinning is unavailable, leaving
// the goroutine unlocked.
func Pin(cpu int) bool {
	if cpu < 0 || cpu >= runtime.NumCPU() {
		return false
	}
	runtime.LockOSThread()
	if err := platformPin(cpu); err != nil {
		runtime.UnlockOSThread()
		return false
	}
	return true
}

// Unpin releases the binding established by a successful Pin.
func Unpin() {
	platformUnpin()
	runtime.UnlockOSThread()
}
