// File: ring/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Double-ended iterators over the physical wraparound positions of a
// view. Cursors are unwrapped running counters (origin + logical
// index, never reduced mod capacity) so right-left always equals the
// remaining count without modular subtraction; positions reduce
// through physical() only at dereference time.

package ring

// Iter walks a view's elements from either end.
type Iter[T any] struct {
	buf       *RingBuffer[T]
	left      int // next forward position, unwrapped
	right     int // one past the next backward position, unwrapped
	remaining int
}

// Next yields the next element from the front.
func (it *Iter[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	v := *it.buf.store.wrapped(it.left)
	it.left++
	it.remaining--
	return v, true
}

// NextBack yields the next element from the back.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}
	it.right--
	it.remaining--
	return *it.buf.store.wrapped(it.right), true
}

// Remaining returns the number of elements left to yield.
func (it *Iter[T]) Remaining() int { return it.remaining }

// IterMut walks a view's elements from either end, yielding mutable
// pointers. The two cursors converge and never cross, so a forward
// yield and a backward yield can never alias the same slot.
type IterMut[T any] struct {
	buf       *RingBuffer[T]
	left      int
	right     int
	remaining int
}

// Next yields a mutable pointer to the next element from the front.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	p := it.buf.store.wrapped(it.left)
	it.left++
	it.remaining--
	return p, true
}

// NextBack yields a mutable pointer to the next element from the back.
func (it *IterMut[T]) NextBack() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	it.right--
	it.remaining--
	return it.buf.store.wrapped(it.right), true
}

// Remaining returns the number of elements left to yield.
func (it *IterMut[T]) Remaining() int { return it.remaining }
