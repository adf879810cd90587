package interval

import "github.com/iotaledger/hive.go/lo"

// HalfOpen is an interval that contains its lower bound but not its upper bound ([a .. b)). It is empty if both
// bounds are equal.
type HalfOpen[T Bound[T]] struct {
	bounds[T]
}

// NewHalfOpen returns the half-open interval [lower .. upper) or ErrInvalidBounds if lower is bigger than upper.
func NewHalfOpen[T Bound[T]](lower, upper T) (HalfOpen[T], error) {
	b, err := newBounds(lower, upper)
	if err != nil {
		return HalfOpen[T]{}, err
	}

	return HalfOpen[T]{b}, nil
}

// NewHalfOpenUnchecked returns the half-open interval [lower .. upper) without validating the bounds. The caller
// needs to make sure that lower is not bigger than upper.
func NewHalfOpenUnchecked[T Bound[T]](lower, upper T) HalfOpen[T] {
	return HalfOpen[T]{bounds[T]{lower: lower, upper: upper}}
}

// MustHalfOpen returns the half-open interval [lower .. upper) and panics if lower is bigger than upper.
func MustHalfOpen[T Bound[T]](lower, upper T) HalfOpen[T] {
	return lo.PanicOnErr(NewHalfOpen(lower, upper))
}

// UpperBoundType returns BoundTypeOpen.
func (h HalfOpen[T]) UpperBoundType() BoundType {
	return BoundTypeOpen
}

// Contains returns true if lower <= value < upper.
func (h HalfOpen[T]) Contains(value T) bool {
	return lessOrEqual(h.lower, value) && less(value, h.upper)
}

// IsEmpty returns true if the lower and the upper bound are equal.
func (h HalfOpen[T]) IsEmpty() bool {
	return equal(h.lower, h.upper)
}

// Overlaps returns true if the interval shares at least one value with the other interval.
func (h HalfOpen[T]) Overlaps(other Interval[T]) bool {
	return overlaps[T](h, other)
}

// Clamped returns the part of the interval that lies within limits. If both are disjoint, the result is the empty
// interval at the end point of limits that is closest to h.
func (h HalfOpen[T]) Clamped(limits HalfOpen[T]) HalfOpen[T] {
	return HalfOpen[T]{h.clamped(limits.bounds)}
}

// Equal returns true if both intervals have the same bounds. Empty intervals at different positions are not equal.
func (h HalfOpen[T]) Equal(other HalfOpen[T]) bool {
	return h.equal(other.bounds)
}

// String returns a human-readable version of the interval.
func (h HalfOpen[T]) String() string {
	return h.format("..<")
}

// GoString returns a debug representation of the interval that uses the debug representation of its bounds.
func (h HalfOpen[T]) GoString() string {
	return h.goString("HalfOpen")
}
