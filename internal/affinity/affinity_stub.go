// File: internal/affinity/affinity_stub.go
//go:build !linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without sched_setaffinity.

package affinity

import "errors"

var errUnsupported = errors.New("affinity: pinning not supported on this platform")

func platformPin(cpu int) error {
	return errUnsupported
}

func platformUnpin() {}
