// File: api/sequence.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Sequence is the uniform "ordered sequence of elements" capability.
// Equality, ordering, hashing and binary search are written once
// against it instead of per concrete view type.

package api

// Sequence is read access to a logically ordered sequence of elements.
// At must panic when i is outside [0, Len()); it is the unchecked tier,
// callers that want a recoverable miss use the concrete type's Get.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Values adapts a plain Go slice to Sequence, so builtin slices
// participate in structural comparison against buffers and views.
type Values[T any] []T

func (v Values[T]) Len() int { return len(v) }

func (v Values[T]) At(i int) T { return v[i] }

// DropFunc is the element destructor hook. A buffer constructed with a
// DropFunc runs it exactly once for every live element it destroys.
// Values handed back to the caller (pop, set, to-owned copies) are not
// dropped; ownership transfers out with the value.
type DropFunc[T any] func(T)

// Pool hands out reusable values of type T.
type Pool[T any] interface {
	Get() T
	Put(T)
}
