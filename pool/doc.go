// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package pool recycles fixed-capacity ring buffer chunks for
// higher-level collections that allocate and discard chunks at high
// rate. Released chunks are cleared (the element drop hook runs on
// every live slot) before they are parked on the free-list, so a
// reused chunk never leaks elements from its previous life.
package pool
