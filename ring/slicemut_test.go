// File: ring/slicemut_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring_test

import (
	"testing"

	"github.com/momentics/ringchunk/api"
	"github.com/momentics/ringchunk/ring"
)

func TestSliceMutSet(t *testing.T) {
	b := rotated(6, []int{10, 20, 30, 40})
	m := b.SliceMut(api.Between(1, 3)) // 20, 30

	old := m.Set(1, 300)
	if old != 30 {
		t.Fatalf("Set returned %d, want 30", old)
	}
	if v, _ := b.Get(2); v != 300 {
		t.Fatalf("buffer not updated through view: %d", v)
	}
	mustPanic(t, "Set at len", func() { m.Set(m.Len(), 0) })
	mustPanic(t, "Set negative", func() { m.Set(-1, 0) })
}

func TestSliceMutPointers(t *testing.T) {
	b := rotated(5, []int{1, 2, 3})
	m := b.SliceMut(api.All())

	p, ok := m.Ptr(1)
	if !ok {
		t.Fatal("Ptr(1) missed")
	}
	*p = 22
	if v, _ := b.Get(1); v != 22 {
		t.Fatalf("pointer write not visible: %d", v)
	}

	if fp, ok := m.FirstPtr(); !ok || *fp != 1 {
		t.Fatalf("FirstPtr = %v, %v", fp, ok)
	}
	if lp, ok := m.LastPtr(); !ok || *lp != 3 {
		t.Fatalf("LastPtr = %v, %v", lp, ok)
	}
	if _, ok := m.Ptr(3); ok {
		t.Fatal("Ptr outside view must miss")
	}
}

// TestSliceMutSplitDisjoint writes through both halves of a split and
// checks neither write is visible through the other half.
func TestSliceMutSplitDisjoint(t *testing.T) {
	b := rotated(8, []int{0, 1, 2, 3, 4, 5})
	left, right := b.SliceMut(api.All()).SplitAt(3)

	if left.Len() != 3 || right.Len() != 3 {
		t.Fatalf("split lens %d/%d", left.Len(), right.Len())
	}

	left.Set(2, 200)  // logical index 2
	right.Set(0, 300) // logical index 3
	want := []int{0, 1, 200, 300, 4, 5}
	if !ring.Equal[int](b, api.Values[int](want)) {
		t.Fatalf("buffer = %v, want %v", b.Slice(api.All()), want)
	}

	// Jointly exhaustive, pairwise disjoint: every buffer index is
	// reachable through exactly one half.
	if _, ok := left.Get(3); ok {
		t.Fatal("left half reaches into right range")
	}
	if _, ok := right.Get(3); ok {
		t.Fatal("right half longer than its range")
	}

	// Degenerate splits are allowed at both ends.
	l2, r2 := b.SliceMut(api.All()).SplitAt(0)
	if l2.Len() != 0 || r2.Len() != b.Len() {
		t.Fatalf("SplitAt(0) lens %d/%d", l2.Len(), r2.Len())
	}
	l3, r3 := b.SliceMut(api.All()).SplitAt(b.Len())
	if l3.Len() != b.Len() || r3.Len() != 0 {
		t.Fatalf("SplitAt(len) lens %d/%d", l3.Len(), r3.Len())
	}
}

func TestSliceMutNarrowAndUnmut(t *testing.T) {
	b := rotated(7, []int{5, 6, 7, 8, 9})
	m := b.SliceMut(api.All()).Narrow(api.Between(1, 4)) // 6, 7, 8
	m.Set(0, 60)

	s := m.Unmut()
	if s.Len() != 3 {
		t.Fatalf("Unmut len = %d", s.Len())
	}
	if v := s.At(0); v != 60 {
		t.Fatalf("Unmut lost mutation: %d", v)
	}
	mustPanic(t, "Narrow escape", func() { b.SliceMut(api.Between(1, 4)).Narrow(api.To(4)) })
}

func TestIterMut(t *testing.T) {
	b := rotated(6, []int{1, 2, 3, 4})
	m := b.SliceMut(api.Between(1, 4)) // 2, 3, 4

	it := m.IterMut()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		*p *= 10
	}
	want := []int{1, 20, 30, 40}
	if !ring.Equal[int](b, api.Values[int](want)) {
		t.Fatalf("buffer = %v, want %v", b.Slice(api.All()), want)
	}

	// Backward mutation, and the converging-cursor stop condition.
	it = m.IterMut()
	if p, ok := it.NextBack(); !ok || *p != 40 {
		t.Fatalf("NextBack = %v, %v", p, ok)
	}
	if p, ok := it.Next(); !ok || *p != 20 {
		t.Fatalf("Next = %v, %v", p, ok)
	}
	if p, ok := it.NextBack(); !ok || *p != 30 {
		t.Fatalf("NextBack = %v, %v", p, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatal("iterator yielded past convergence")
	}
	if _, ok := it.NextBack(); ok {
		t.Fatal("iterator yielded past convergence backwards")
	}
}
