// File: ring/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slice: shared zero-copy view over a contiguous logical sub-range of
// a RingBuffer.

package ring

import (
	"fmt"
	"strings"

	"github.com/momentics/ringchunk/api"
)

var _ api.Sequence[int] = Slice[int]{}

// Slice is a read-only window [start, end) over a buffer's logical
// contents. The range is validated against the buffer when the view is
// constructed; the buffer must not be mutated while the view is live.
type Slice[T any] struct {
	buf        *RingBuffer[T]
	start, end int
}

// resolveRange translates r, whose indices are relative to the parent
// window [start, end), into absolute logical bounds. Panics when the
// translated range escapes the parent, is inverted, or carries an
// exclusive lower bound. Never clamps.
func resolveRange(r api.Range, start, end int) (int, int) {
	lo := start
	switch r.Start.Kind {
	case api.Unbounded:
	case api.Included:
		lo = start + r.Start.Index
	case api.Excluded:
		panic("ring: exclusive lower bound not supported")
	}
	hi := end
	switch r.End.Kind {
	case api.Unbounded:
	case api.Included:
		hi = start + r.End.Index + 1
	case api.Excluded:
		hi = start + r.End.Index
	}
	if lo < start || hi > end || lo > hi {
		panic(fmt.Sprintf("ring: subrange [%d,%d) out of bounds of [%d,%d)", lo, hi, start, end))
	}
	return lo, hi
}

// Len returns the number of elements in the view.
func (s Slice[T]) Len() int { return s.end - s.start }

// IsEmpty reports whether the view is empty.
func (s Slice[T]) IsEmpty() bool { return s.Len() == 0 }

// Get returns the element at view index i, or ok=false when i is
// outside the view (a normal miss, not an error).
func (s Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, false
	}
	return *s.buf.store.ptr(s.start + i), true
}

// At implements api.Sequence. Panics when i is outside the view.
func (s Slice[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic("ring: index out of range")
	}
	return *s.buf.store.ptr(s.start + i)
}

// First returns the first element of the view.
func (s Slice[T]) First() (T, bool) { return s.Get(0) }

// Last returns the last element of the view.
func (s Slice[T]) Last() (T, bool) { return s.Get(s.Len() - 1) }

// Iter returns a double-ended iterator over the view.
func (s Slice[T]) Iter() *Iter[T] {
	return &Iter[T]{
		buf:       s.buf,
		left:      s.buf.store.origin + s.start,
		right:     s.buf.store.origin + s.end,
		remaining: s.Len(),
	}
}

// Narrow returns a sub-view selected by r. The receiver is consumed:
// only the returned view may be used afterwards. Panics on an invalid
// range.
func (s Slice[T]) Narrow(r api.Range) Slice[T] {
	lo, hi := resolveRange(r, s.start, s.end)
	return Slice[T]{buf: s.buf, start: lo, end: hi}
}

// SplitAt consumes the view and returns two adjacent views covering
// [0, index) and [index, Len()). Panics if index > Len().
func (s Slice[T]) SplitAt(index int) (Slice[T], Slice[T]) {
	if index < 0 || index > s.Len() {
		panic("ring: SplitAt index out of bounds")
	}
	mid := s.start + index
	return Slice[T]{buf: s.buf, start: s.start, end: mid},
		Slice[T]{buf: s.buf, start: mid, end: s.end}
}

// ToOwned materializes a new RingBuffer holding a copy of the view's
// elements in logical order. This is the only Slice operation that
// copies data. The copy has the same capacity as the source buffer and
// no drop hook (element copies are shallow).
func (s Slice[T]) ToOwned() *RingBuffer[T] {
	out := New[T](s.buf.Cap())
	for i := 0; i < s.Len(); i++ {
		out.store.write(i, *s.buf.store.ptr(s.start+i))
	}
	out.store.length = s.Len()
	return out
}

// BinarySearchFunc searches the view, assuming f-order, see
// BinarySearchFunc at package level.
func (s Slice[T]) BinarySearchFunc(f func(T) int) (int, bool) {
	return BinarySearchFunc[T](s, f)
}

// String renders the logical contents for debugging.
func (s Slice[T]) String() string {
	var sb strings.Builder
	sb.WriteString("RingBuffer[")
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", s.At(i))
	}
	sb.WriteString("]")
	return sb.String()
}
