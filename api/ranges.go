// File: api/ranges.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Logical sub-range DTO consumed by view narrowing. Indices are
// relative to the view being narrowed, not to the owning buffer.

package api

// BoundKind discriminates the three bound forms of a Range side.
type BoundKind uint8

const (
	Unbounded BoundKind = iota // resolve to the parent view's own bound
	Included                   // index is part of the range
	Excluded                   // index is outside the range
)

// Bound is one side of a Range.
//
// An Excluded lower bound is representable but not supported: range
// resolution rejects it outright rather than guessing at semantics.
type Bound struct {
	Kind  BoundKind
	Index int
}

// Range selects a contiguous logical sub-range of a view.
// The zero value selects the whole view.
type Range struct {
	Start Bound
	End   Bound
}

// All selects the whole view.
func All() Range { return Range{} }

// From selects [start, view end).
func From(start int) Range {
	return Range{Start: Bound{Kind: Included, Index: start}}
}

// To selects [view start, end).
func To(end int) Range {
	return Range{End: Bound{Kind: Excluded, Index: end}}
}

// Through selects [view start, end].
func Through(end int) Range {
	return Range{End: Bound{Kind: Included, Index: end}}
}

// Between selects [start, end).
func Between(start, end int) Range {
	return Range{
		Start: Bound{Kind: Included, Index: start},
		End:   Bound{Kind: Excluded, Index: end},
	}
}
