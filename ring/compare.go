// File: ring/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Public comparison surface; thin wrappers over internal/seq so a
// Slice, a SliceMut, an owned RingBuffer and an api.Values all take
// part in the same structural equality, ordering and hashing.

package ring

import (
	"cmp"
	"hash/maphash"

	"github.com/momentics/ringchunk/api"
	"github.com/momentics/ringchunk/internal/seq"
)

// Equal reports structural equality: same length, pairwise equal
// elements in logical order.
func Equal[T comparable](a, b api.Sequence[T]) bool {
	return seq.Equal(a, b)
}

// EqualFunc is Equal under a caller-supplied element equality.
func EqualFunc[T, U any](a api.Sequence[T], b api.Sequence[U], eq func(T, U) bool) bool {
	return seq.EqualFunc(a, b, eq)
}

// Compare orders two sequences lexicographically, length breaking ties.
func Compare[T cmp.Ordered](a, b api.Sequence[T]) int {
	return seq.Compare(a, b)
}

// CompareFunc is Compare under a caller-supplied element comparison.
func CompareFunc[T, U any](a api.Sequence[T], b api.Sequence[U], compare func(T, U) int) int {
	return seq.CompareFunc(a, b, compare)
}

// Hash returns an order-sensitive structural hash of s.
func Hash[T comparable](seed maphash.Seed, s api.Sequence[T]) uint64 {
	return seq.Hash(seed, s)
}
