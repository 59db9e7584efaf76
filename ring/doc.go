// File: ring/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package ring implements a fixed-capacity circular buffer intended as
// the chunk primitive for higher-level chunked collections.
//
// A RingBuffer owns a fixed array of slots addressed through a wrapping
// origin offset; exactly the slots inside the logical window
// [origin, origin+length) are live. Slice and SliceMut are zero-copy
// views over a contiguous logical sub-range; they can be narrowed,
// split and binary-searched without copying. ToOwned is the only
// operation that copies element data.
//
// The structure is single-owner and sequential: any number of Slice
// views may be read concurrently with each other, but a SliceMut must
// be the only outstanding view. SplitAt on a SliceMut is the one
// sanctioned way to hold two exclusive views at once, and only because
// the resulting ranges are disjoint by construction.
package ring
