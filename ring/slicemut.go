// File: ring/slicemut.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SliceMut: exclusive zero-copy view. Same read contract as Slice plus
// in-place mutation. At most one SliceMut (or its SplitAt descendants)
// may address a given logical range at a time.

package ring

import (
	"github.com/momentics/ringchunk/api"
)

var _ api.Sequence[int] = SliceMut[int]{}

// SliceMut is an exclusive window [start, end) over a buffer's logical
// contents. While it is live the owning buffer must not be accessed
// through any other path.
type SliceMut[T any] struct {
	buf        *RingBuffer[T]
	start, end int
}

// Unmut downgrades to a shared Slice with the identical range, ending
// exclusive access. The receiver is consumed.
func (s SliceMut[T]) Unmut() Slice[T] {
	return Slice[T]{buf: s.buf, start: s.start, end: s.end}
}

// Len returns the number of elements in the view.
func (s SliceMut[T]) Len() int { return s.end - s.start }

// IsEmpty reports whether the view is empty.
func (s SliceMut[T]) IsEmpty() bool { return s.Len() == 0 }

// Get returns the element at view index i, or ok=false when i is
// outside the view.
func (s SliceMut[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return *s.buf.store.ptr(s.start + i), true
}

// At implements api.Sequence. Panics when i is outside the view.
func (s SliceMut[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic("ring: index out of range")
	}
	return *s.buf.store.ptr(s.start + i)
}

// Ptr returns a mutable pointer to the element at view index i, or
// ok=false when i is outside the view.
func (s SliceMut[T]) Ptr(i int) (*T, bool) {
	if i < 0 || i >= s.Len() {
		return nil, false
	}
	return s.buf.store.ptr(s.start + i), true
}

// First returns the first element of the view.
func (s SliceMut[T]) First() (T, bool) { return s.Get(0) }

// Last returns the last element of the view.
func (s SliceMut[T]) Last() (T, bool) { return s.Get(s.Len() - 1) }

// FirstPtr returns a mutable pointer to the first element.
func (s SliceMut[T]) FirstPtr() (*T, bool) { return s.Ptr(0) }

// LastPtr returns a mutable pointer to the last element.
func (s SliceMut[T]) LastPtr() (*T, bool) { return s.Ptr(s.Len() - 1) }

// Set replaces the element at view index i and returns the displaced
// value. Panics when i is outside the view: a mutation through a view
// index the view does not cover is a contract violation, not a miss.
func (s SliceMut[T]) Set(i int, v T) T {
	if i < 0 || i >= s.Len() {
		panic("ring: Set index out of range")
	}
	old, _ := s.buf.Set(s.start+i, v)
	return old
}

// Iter returns a double-ended iterator over the view's elements.
func (s SliceMut[T]) Iter() *Iter[T] {
	return s.asSlice().Iter()
}

// IterMut returns a double-ended iterator yielding mutable pointers.
func (s SliceMut[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{
		buf:       s.buf,
		left:      s.buf.store.origin + s.start,
		right:     s.buf.store.origin + s.end,
		remaining: s.Len(),
	}
}

// Narrow returns an exclusive sub-view selected by r. The receiver is
// consumed; exclusivity carries over to the returned view only.
// Panics on an invalid range.
func (s SliceMut[T]) Narrow(r api.Range) SliceMut[T] {
	lo, hi := resolveRange(r, s.start, s.end)
	return SliceMut[T]{buf: s.buf, start: lo, end: hi}
}

// SplitAt consumes the view and returns two exclusive views covering
// [0, index) and [index, Len()). This is the only sanctioned way for
// two exclusive views to coexist: the left view ends exactly where the
// right one begins, so no slot is reachable through both. Panics if
// index > Len().
func (s SliceMut[T]) SplitAt(index int) (SliceMut[T], SliceMut[T]) {
	if index < 0 || index > s.Len() {
		panic("ring: SplitAt index out of bounds")
	}
	mid := s.start + index
	left := SliceMut[T]{buf: s.buf, start: s.start, end: mid}
	right := SliceMut[T]{buf: s.buf, start: mid, end: s.end}
	if left.end > right.start {
		panic("ring: split produced overlapping exclusive views")
	}
	return left, right
}

// ToOwned materializes an independently owned copy of the view.
func (s SliceMut[T]) ToOwned() *RingBuffer[T] {
	return s.asSlice().ToOwned()
}

// BinarySearchFunc searches the view, see package-level
// BinarySearchFunc.
func (s SliceMut[T]) BinarySearchFunc(f func(T) int) (int, bool) {
	return BinarySearchFunc[T](s, f)
}

// String renders the logical contents for debugging.
func (s SliceMut[T]) String() string {
	return s.asSlice().String()
}

// asSlice is the internal read-only projection; unlike Unmut it does
// not signal the end of exclusive access.
func (s SliceMut[T]) asSlice() Slice[T] {
	return Slice[T]{buf: s.buf, start: s.start, end: s.end}
}
