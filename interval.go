// Package interval provides immutable interval types over an ordered Bound.
//
// There are two shapes and two flavors of each:
//
// Notation    Definition           Type                  Bound
// [a .. b)    {x | a <= x < b}     HalfOpen              Bound
// [a .. b]    {x | a <= x <= b}    Closed                Bound
// [a .. b)    {x | a <= x < b}     CountableHalfOpen     DiscreteBound
// [a .. b]    {x | a <= x <= b}    CountableClosed       DiscreteBound
//
// The countable types can additionally be counted, converted into the other shape and enumerated. A half-open
// interval with equal bounds is empty, a closed interval always contains at least its lower bound.
package interval

// Interval is the interface that is implemented by all interval types of this package.
type Interval[T any] interface {
	// LowerBound returns the smallest value of the interval.
	LowerBound() T

	// UpperBound returns the upper end point of the interval (see UpperBoundType).
	UpperBound() T

	// UpperBoundType returns BoundTypeClosed if the UpperBound is part of the interval and BoundTypeOpen otherwise.
	UpperBoundType() BoundType

	// Contains returns true if the value lies within the interval.
	Contains(value T) bool

	// IsEmpty returns true if the interval does not contain any values.
	IsEmpty() bool
}

// overlaps returns true if the two intervals share at least one value. Under a total order two non-empty intervals
// intersect iff one of them contains the lower bound of the other.
func overlaps[T any](a, b Interval[T]) bool {
	return (!b.IsEmpty() && a.Contains(b.LowerBound())) || (!a.IsEmpty() && b.Contains(a.LowerBound()))
}
