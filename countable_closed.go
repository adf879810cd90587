package interval

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// CountableClosed is a Closed interval over a DiscreteBound. In addition to the Closed API it can be counted,
// converted into a CountableHalfOpen interval and used as an index domain in which every element is its own index.
type CountableClosed[T DiscreteBound[T]] struct {
	Closed[T]
}

// NewCountableClosed returns the interval [lower .. upper] or ErrInvalidBounds if lower is bigger than upper.
func NewCountableClosed[T DiscreteBound[T]](lower, upper T) (CountableClosed[T], error) {
	c, err := NewClosed(lower, upper)
	if err != nil {
		return CountableClosed[T]{}, err
	}

	return CountableClosed[T]{c}, nil
}

// NewCountableClosedUnchecked returns the interval [lower .. upper] without validating the bounds.
func NewCountableClosedUnchecked[T DiscreteBound[T]](lower, upper T) CountableClosed[T] {
	return CountableClosed[T]{NewClosedUnchecked(lower, upper)}
}

// MustCountableClosed returns the interval [lower .. upper] and panics if lower is bigger than upper.
func MustCountableClosed[T DiscreteBound[T]](lower, upper T) CountableClosed[T] {
	return lo.PanicOnErr(NewCountableClosed(lower, upper))
}

// CountableClosedOf returns the countable version of the given Closed interval.
func CountableClosedOf[T DiscreteBound[T]](c Closed[T]) CountableClosed[T] {
	return CountableClosed[T]{c}
}

// Count returns the number of elements in the interval. It panics if the count does not fit into an int.
func (c CountableClosed[T]) Count() int {
	distance := c.lower.Distance(c.upper)
	if distance == math.MaxInt {
		panic(ierrors.Wrapf(ErrBoundOverflow, "element count of %v exceeds int", c))
	}

	return distance + 1
}

// Clamped returns the part of the interval that lies within limits (see Closed.Clamped).
func (c CountableClosed[T]) Clamped(limits CountableClosed[T]) CountableClosed[T] {
	return CountableClosed[T]{c.Closed.Clamped(limits.Closed)}
}

// Equal returns true if both intervals have the same bounds.
func (c CountableClosed[T]) Equal(other CountableClosed[T]) bool {
	return c.Closed.Equal(other.Closed)
}

// ToHalfOpen returns the half-open interval that contains the same elements. It returns ErrBoundOverflow if the upper
// bound is the biggest value of its type.
func (c CountableClosed[T]) ToHalfOpen() (CountableHalfOpen[T], error) {
	upper, ok := c.upper.Advance(1)
	if !ok {
		return CountableHalfOpen[T]{}, ierrors.Wrapf(ErrBoundOverflow, "failed to convert %v", c)
	}

	return NewCountableHalfOpenUnchecked(c.lower, upper), nil
}

// StartIndex returns the position of the first element (the lower bound).
func (c CountableClosed[T]) StartIndex() T {
	return c.lower
}

// EndIndex returns the position of the last element (the upper bound).
func (c CountableClosed[T]) EndIndex() T {
	return c.upper
}

// Successor returns the position after the given one. It panics if position is not in [lower .. upper).
func (c CountableClosed[T]) Successor(position T) T {
	return successor(c.bounds, position)
}

// Predecessor returns the position before the given one. It panics if position is not in (lower .. upper].
func (c CountableClosed[T]) Predecessor(position T) T {
	return predecessor(c.bounds, position)
}

// Offset returns the position n steps away from the given one. It panics if the result is not in [lower .. upper].
func (c CountableClosed[T]) Offset(position T, n int) T {
	return offset(c.bounds, position, n)
}

// Distance returns the number of steps between the two positions.
func (c CountableClosed[T]) Distance(from, to T) int {
	return from.Distance(to)
}

// At returns the element at the given position. It panics if the interval does not contain the position.
func (c CountableClosed[T]) At(position T) T {
	if !c.Contains(position) {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "%v does not contain %v", c, position))
	}

	return position
}

// ForEach iterates through the elements in ascending order until the callback returns false.
func (c CountableClosed[T]) ForEach(callback func(element T) bool) {
	forEach(c.lower, c.Count(), callback)
}

// GoString returns a debug representation of the interval.
func (c CountableClosed[T]) GoString() string {
	return c.goString("CountableClosed")
}
