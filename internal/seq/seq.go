// File: internal/seq/seq.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Structural comparison over api.Sequence, implemented once so every
// pair of view/buffer/builtin-slice types compares the same way
// regardless of physical layout.

package seq

import (
	"cmp"
	"encoding/binary"
	"hash/maphash"

	"github.com/momentics/ringchunk/api"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b api.Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal under a caller-supplied element equality.
func EqualFunc[T, U any](a api.Sequence[T], b api.Sequence[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically element by element, with
// length as the tie-break (a prefix sorts first).
func Compare[T cmp.Ordered](a, b api.Sequence[T]) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// CompareFunc is Compare under a caller-supplied element comparison.
func CompareFunc[T, U any](a api.Sequence[T], b api.Sequence[U], compare func(T, U) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := compare(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Hash returns an order-sensitive hash of the sequence's elements.
// Structurally equal sequences hash equal under the same seed, whatever
// their physical layout.
func Hash[T comparable](seed maphash.Seed, s api.Sequence[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	var buf [8]byte
	for i := 0; i < s.Len(); i++ {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(seed, s.At(i)))
		h.Write(buf[:])
	}
	return h.Sum64()
}
