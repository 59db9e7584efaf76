// File: ring/search_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/momentics/ringchunk/api"
	"github.com/momentics/ringchunk/ring"
)

// TestBinarySearchPinned pins the exact behavior of the base-advance
// formulation: duplicates resolve to the last equal position, misses
// return the insertion point.
func TestBinarySearchPinned(t *testing.T) {
	b := rotated(8, []int{1, 3, 3, 5, 8})
	view := b.Slice(api.All())

	cases := []struct {
		target    int
		wantIdx   int
		wantFound bool
	}{
		{3, 2, true},  // last duplicate
		{4, 3, false}, // insertion point between 3 and 5
		{1, 0, true},
		{8, 4, true},
		{0, 0, false},
		{9, 5, false},
		{6, 4, false}, // insertion point between 5 and 8
	}
	for _, tc := range cases {
		idx, found := ring.BinarySearch[int](view, tc.target)
		if idx != tc.wantIdx || found != tc.wantFound {
			t.Errorf("search(%d) = (%d, %v), want (%d, %v)",
				tc.target, idx, found, tc.wantIdx, tc.wantFound)
		}
	}

	empty := b.Slice(api.Between(2, 2))
	if idx, found := ring.BinarySearch[int](empty, 3); idx != 0 || found {
		t.Errorf("search on empty view = (%d, %v), want (0, false)", idx, found)
	}
}

func TestBinarySearchOnAllViewTypes(t *testing.T) {
	values := []int{2, 4, 6, 8}
	b := rotated(6, values)

	if idx, found := ring.BinarySearch[int](b, 6); idx != 2 || !found {
		t.Errorf("buffer search = (%d, %v)", idx, found)
	}
	if idx, found := ring.BinarySearch[int](b.Slice(api.All()), 6); idx != 2 || !found {
		t.Errorf("slice search = (%d, %v)", idx, found)
	}
	if idx, found := ring.BinarySearch[int](b.SliceMut(api.All()), 6); idx != 2 || !found {
		t.Errorf("mutable slice search = (%d, %v)", idx, found)
	}
}

func TestBinarySearchKey(t *testing.T) {
	type entry struct {
		key  int
		name string
	}
	b := ring.FromSlice(4, []entry{{1, "a"}, {4, "b"}, {9, "c"}})
	view := b.Slice(api.All())

	idx, found := ring.BinarySearchKey(view, 4, func(e entry) int { return e.key })
	if idx != 1 || !found {
		t.Fatalf("key search = (%d, %v)", idx, found)
	}
	idx, found = ring.BinarySearchKey(view, 5, func(e entry) int { return e.key })
	if idx != 2 || found {
		t.Fatalf("key search miss = (%d, %v)", idx, found)
	}
}

// TestBinarySearchRandomized checks the result against a linear scan
// for random sorted contents over rotated layouts.
func TestBinarySearchRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(20)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.Intn(15)
		}
		sort.Ints(values)
		b := rotated(24, values)
		view := b.Slice(api.All())

		target := rng.Intn(17) - 1
		idx, found := ring.BinarySearch[int](view, target)

		if found {
			if values[idx] != target {
				t.Fatalf("found %d at %d in %v", target, idx, values)
			}
			// Tie-break: the last equal position.
			if idx+1 < n && values[idx+1] == target {
				t.Fatalf("search(%d) = %d, not last duplicate in %v", target, idx, values)
			}
		} else {
			// Insertion point keeps the order.
			if idx > 0 && values[idx-1] > target {
				t.Fatalf("insertion %d too high for %d in %v", idx, target, values)
			}
			if idx < n && values[idx] <= target {
				t.Fatalf("insertion %d too low for %d in %v", idx, target, values)
			}
		}
	}
}
