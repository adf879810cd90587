package interval

import "github.com/iotaledger/hive.go/lo"

// Closed is an interval that contains both of its bounds ([a .. b]). It can never be empty: if both bounds are equal
// it contains exactly one value.
type Closed[T Bound[T]] struct {
	bounds[T]
}

// NewClosed returns the closed interval [lower .. upper] or ErrInvalidBounds if lower is bigger than upper.
func NewClosed[T Bound[T]](lower, upper T) (Closed[T], error) {
	b, err := newBounds(lower, upper)
	if err != nil {
		return Closed[T]{}, err
	}

	return Closed[T]{b}, nil
}

// NewClosedUnchecked returns the closed interval [lower .. upper] without validating the bounds.
func NewClosedUnchecked[T Bound[T]](lower, upper T) Closed[T] {
	return Closed[T]{bounds[T]{lower: lower, upper: upper}}
}

// MustClosed returns the closed interval [lower .. upper] and panics if lower is bigger than upper.
func MustClosed[T Bound[T]](lower, upper T) Closed[T] {
	return lo.PanicOnErr(NewClosed(lower, upper))
}

// UpperBoundType returns BoundTypeClosed.
func (c Closed[T]) UpperBoundType() BoundType {
	return BoundTypeClosed
}

// Contains returns true if lower <= value <= upper.
func (c Closed[T]) Contains(value T) bool {
	return lessOrEqual(c.lower, value) && lessOrEqual(value, c.upper)
}

// IsEmpty always returns false.
func (c Closed[T]) IsEmpty() bool {
	return false
}

// Overlaps returns true if the interval shares at least one value with the other interval.
func (c Closed[T]) Overlaps(other Interval[T]) bool {
	return overlaps[T](c, other)
}

// Clamped returns the part of the interval that lies within limits. If both are disjoint, the result is the single
// end point of limits that is closest to c.
func (c Closed[T]) Clamped(limits Closed[T]) Closed[T] {
	return Closed[T]{c.clamped(limits.bounds)}
}

// Equal returns true if both intervals have the same bounds.
func (c Closed[T]) Equal(other Closed[T]) bool {
	return c.equal(other.bounds)
}

// String returns a human-readable version of the interval.
func (c Closed[T]) String() string {
	return c.format("...")
}

// GoString returns a debug representation of the interval that uses the debug representation of its bounds.
func (c Closed[T]) GoString() string {
	return c.goString("Closed")
}
