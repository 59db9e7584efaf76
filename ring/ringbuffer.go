// File: ring/ringbuffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer: the owning fixed-capacity buffer. Deque-style front/back
// operations, checked element access, and view constructors.

package ring

import (
	"github.com/momentics/ringchunk/api"
)

// Ensure compile-time interface compliance.
var _ api.Sequence[int] = (*RingBuffer[int])(nil)

// RingBuffer is a fixed-capacity circular buffer. Capacity is set at
// construction and never changes; a full buffer rejects insertion
// rather than growing. Not safe for concurrent use.
type RingBuffer[T any] struct {
	store storage[T]
	drop  api.DropFunc[T]
}

// New allocates an empty buffer with the given capacity.
// Panics if capacity is not positive.
func New[T any](capacity int) *RingBuffer[T] {
	return NewWithDrop[T](capacity, nil)
}

// NewWithDrop allocates an empty buffer whose Clear runs drop exactly
// once for every live element it destroys.
func NewWithDrop[T any](capacity int, drop api.DropFunc[T]) *RingBuffer[T] {
	return &RingBuffer[T]{store: newStorage[T](capacity), drop: drop}
}

// FromSlice allocates a buffer pre-filled with values in logical order.
// Panics if the values do not fit the capacity.
func FromSlice[T any](capacity int, values []T) *RingBuffer[T] {
	if len(values) > capacity {
		panic("ring: more values than capacity")
	}
	b := New[T](capacity)
	for _, v := range values {
		b.store.write(b.store.length, v)
		b.store.length++
	}
	return b
}

// Len returns the number of live elements.
func (b *RingBuffer[T]) Len() int { return b.store.length }

// Cap returns the fixed capacity.
func (b *RingBuffer[T]) Cap() int { return b.store.capacity() }

// IsEmpty reports whether the buffer holds no elements.
func (b *RingBuffer[T]) IsEmpty() bool { return b.store.length == 0 }

// IsFull reports whether the buffer is at capacity.
func (b *RingBuffer[T]) IsFull() bool { return b.store.length == b.store.capacity() }

// Get returns the element at logical index i, or ok=false when i is
// outside the live window.
func (b *RingBuffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.store.length {
		var zero T
		return zero, false
	}
	return *b.store.ptr(i), true
}

// At implements api.Sequence. Panics when i is outside the live window.
func (b *RingBuffer[T]) At(i int) T {
	if i < 0 || i >= b.store.length {
		panic("ring: index out of range")
	}
	return *b.store.ptr(i)
}

// Ptr returns a mutable pointer to the element at logical index i, or
// ok=false when i is outside the live window. The pointer is valid
// until the next operation that moves the window.
func (b *RingBuffer[T]) Ptr(i int) (*T, bool) {
	if i < 0 || i >= b.store.length {
		return nil, false
	}
	return b.store.ptr(i), true
}

// Set replaces the element at logical index i and returns the displaced
// value. ok=false when i is outside the live window; the buffer is then
// unmodified. Origin and length are never changed by Set.
func (b *RingBuffer[T]) Set(i int, v T) (T, bool) {
	if i < 0 || i >= b.store.length {
		var zero T
		return zero, false
	}
	return b.store.replace(i, v), true
}

// PushBack appends v at the back; returns false when full.
func (b *RingBuffer[T]) PushBack(v T) bool {
	if b.IsFull() {
		return false
	}
	b.store.write(b.store.length, v)
	b.store.length++
	return true
}

// PushFront inserts v at the front, moving the origin back one slot;
// returns false when full.
func (b *RingBuffer[T]) PushFront(v T) bool {
	if b.IsFull() {
		return false
	}
	b.store.origin = physical(b.store.origin, b.Cap()-1, b.Cap())
	b.store.length++
	b.store.write(0, v)
	return true
}

// PopBack removes and returns the back element. Ownership transfers to
// the caller; the drop hook does not run.
func (b *RingBuffer[T]) PopBack() (T, bool) {
	if b.IsEmpty() {
		var zero T
		return zero, false
	}
	v := b.store.take(b.store.length - 1)
	b.store.length--
	return v, true
}

// PopFront removes and returns the front element, advancing the origin.
func (b *RingBuffer[T]) PopFront() (T, bool) {
	if b.IsEmpty() {
		var zero T
		return zero, false
	}
	v := b.store.take(0)
	b.store.origin = physical(b.store.origin, 1, b.Cap())
	b.store.length--
	return v, true
}

// Clear destroys every live element: the drop hook (if any) runs once
// per element, slots are zeroed and the window resets to empty.
func (b *RingBuffer[T]) Clear() {
	b.store.clear(b.drop)
}

// Clone returns an independently owned buffer with the same capacity
// and element sequence. Element copies are shallow, so the clone does
// not inherit the drop hook; attach one with NewWithDrop semantics via
// pool construction if the copy is deep.
func (b *RingBuffer[T]) Clone() *RingBuffer[T] {
	c := New[T](b.Cap())
	for i := 0; i < b.store.length; i++ {
		c.store.write(i, *b.store.ptr(i))
	}
	c.store.length = b.store.length
	return c
}

// State is a debug snapshot of the buffer geometry.
type State struct {
	Capacity int
	Origin   int
	Length   int
}

// State returns the current buffer geometry for diagnostics.
func (b *RingBuffer[T]) State() State {
	return State{Capacity: b.Cap(), Origin: b.store.origin, Length: b.store.length}
}

// Slice returns a shared view over the sub-range r of the current
// logical contents. Panics on an invalid range.
func (b *RingBuffer[T]) Slice(r api.Range) Slice[T] {
	full := Slice[T]{buf: b, start: 0, end: b.Len()}
	return full.Narrow(r)
}

// SliceMut returns an exclusive view over the sub-range r. The caller
// must not use the buffer, or any other view, while it is live.
func (b *RingBuffer[T]) SliceMut(r api.Range) SliceMut[T] {
	full := SliceMut[T]{buf: b, start: 0, end: b.Len()}
	return full.Narrow(r)
}

// Iter returns a double-ended iterator over the whole buffer.
func (b *RingBuffer[T]) Iter() *Iter[T] {
	return b.Slice(api.All()).Iter()
}
