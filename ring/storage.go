// File: ring/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed slot array with origin/length live window. All wraparound
// arithmetic funnels through physical().

package ring

// slot is a maybe-initialized storage cell. The live flag makes the
// window invariant locally checkable: a slot must be live iff its
// physical index lies inside [origin, origin+length) mod capacity.
type slot[T any] struct {
	value T
	live  bool
}

// physical translates logical index i to a physical slot index for the
// given origin and capacity. This is the single wraparound site.
func physical(origin, index, capacity int) int {
	return (origin + index) % capacity
}

// storage is the fixed-capacity slot array underlying a RingBuffer.
type storage[T any] struct {
	slots  []slot[T]
	origin int // physical slot of logical index 0
	length int // count of live elements
}

func newStorage[T any](capacity int) storage[T] {
	if capacity <= 0 {
		panic("ring: capacity must be positive")
	}
	return storage[T]{slots: make([]slot[T], capacity)}
}

func (s *storage[T]) capacity() int { return len(s.slots) }

// ptr returns the address of the value at logical index i.
// No window check: callers guarantee i < length.
func (s *storage[T]) ptr(i int) *T {
	return &s.slots[physical(s.origin, i, len(s.slots))].value
}

// wrapped returns the address of the value at an unwrapped cursor
// position, as walked by iterators.
func (s *storage[T]) wrapped(idx int) *T {
	return &s.slots[physical(0, idx, len(s.slots))].value
}

// write initializes the slot at logical index i with v.
func (s *storage[T]) write(i int, v T) {
	sl := &s.slots[physical(s.origin, i, len(s.slots))]
	sl.value = v
	sl.live = true
}

// replace swaps v into the live slot at logical index i and returns the
// displaced value. Ownership of the old value moves to the caller, so
// nothing is dropped here.
func (s *storage[T]) replace(i int, v T) T {
	sl := &s.slots[physical(s.origin, i, len(s.slots))]
	old := sl.value
	sl.value = v
	return old
}

// take moves the value out of the slot at logical index i, leaving the
// slot dead and zeroed.
func (s *storage[T]) take(i int) T {
	sl := &s.slots[physical(s.origin, i, len(s.slots))]
	v := sl.value
	var zero T
	sl.value = zero
	sl.live = false
	return v
}

// clear destroys exactly the live window: the drop hook runs once per
// live slot, slots are zeroed, and the window resets. Empty storage is
// a no-op. Slots outside the window are never touched.
func (s *storage[T]) clear(drop func(T)) {
	for i := 0; i < s.length; i++ {
		sl := &s.slots[physical(s.origin, i, len(s.slots))]
		if !sl.live {
			panic("ring: dead slot inside live window")
		}
		if drop != nil {
			drop(sl.value)
		}
		var zero T
		sl.value = zero
		sl.live = false
	}
	s.origin = 0
	s.length = 0
}
