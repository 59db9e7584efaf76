// File: ring/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Branch-reduced binary search over any api.Sequence. The loop keeps a
// base and a shrinking size instead of the textbook lo/hi midpoint
// form; it does one comparison per halving and resolves ties toward
// the last equal position. Callers that care about which duplicate is
// found rely on that tie-break, so the formulation is fixed.

package ring

import (
	"cmp"

	"github.com/momentics/ringchunk/api"
)

// BinarySearchFunc searches s for the target described by f, assuming
// the sequence is sorted non-decreasing under f's order. f reports the
// element's ordering relative to the target: negative when the element
// is smaller, zero on a match, positive when it is greater.
//
// On a match it returns (index, true) with index naming the last
// matching position among duplicates. On a miss it returns
// (insertionPoint, false); inserting at that index keeps the sequence
// sorted. An empty sequence returns (0, false).
func BinarySearchFunc[T any](s api.Sequence[T], f func(T) int) (int, bool) {
	size := s.Len()
	if size == 0 {
		return 0, false
	}
	base := 0
	for size > 1 {
		half := size / 2
		mid := base + half
		// Keep base when the probed element is past the target,
		// otherwise advance onto the probe.
		if f(s.At(mid)) <= 0 {
			base = mid
		}
		size -= half
	}
	switch c := f(s.At(base)); {
	case c == 0:
		return base, true
	case c < 0:
		return base + 1, false
	default:
		return base, false
	}
}

// BinarySearch searches a sorted sequence for target under the natural
// order of T.
func BinarySearch[T cmp.Ordered](s api.Sequence[T], target T) (int, bool) {
	return BinarySearchFunc(s, func(v T) int { return cmp.Compare(v, target) })
}

// BinarySearchKey searches a sequence sorted by the extracted key.
func BinarySearchKey[T any, K cmp.Ordered](s api.Sequence[T], key K, extract func(T) K) (int, bool) {
	return BinarySearchFunc(s, func(v T) int { return cmp.Compare(extract(v), key) })
}
