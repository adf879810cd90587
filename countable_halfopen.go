package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// CountableHalfOpen is a HalfOpen interval over a DiscreteBound. In addition to the HalfOpen API it can be counted,
// converted into a CountableClosed interval and used as an index domain in which every element is its own index.
type CountableHalfOpen[T DiscreteBound[T]] struct {
	HalfOpen[T]
}

// NewCountableHalfOpen returns the interval [lower .. upper) or ErrInvalidBounds if lower is bigger than upper.
func NewCountableHalfOpen[T DiscreteBound[T]](lower, upper T) (CountableHalfOpen[T], error) {
	h, err := NewHalfOpen(lower, upper)
	if err != nil {
		return CountableHalfOpen[T]{}, err
	}

	return CountableHalfOpen[T]{h}, nil
}

// NewCountableHalfOpenUnchecked returns the interval [lower .. upper) without validating the bounds.
func NewCountableHalfOpenUnchecked[T DiscreteBound[T]](lower, upper T) CountableHalfOpen[T] {
	return CountableHalfOpen[T]{NewHalfOpenUnchecked(lower, upper)}
}

// MustCountableHalfOpen returns the interval [lower .. upper) and panics if lower is bigger than upper.
func MustCountableHalfOpen[T DiscreteBound[T]](lower, upper T) CountableHalfOpen[T] {
	return lo.PanicOnErr(NewCountableHalfOpen(lower, upper))
}

// CountableHalfOpenOf returns the countable version of the given HalfOpen interval.
func CountableHalfOpenOf[T DiscreteBound[T]](h HalfOpen[T]) CountableHalfOpen[T] {
	return CountableHalfOpen[T]{h}
}

// Count returns the number of elements in the interval.
func (c CountableHalfOpen[T]) Count() int {
	return c.lower.Distance(c.upper)
}

// Clamped returns the part of the interval that lies within limits (see HalfOpen.Clamped).
func (c CountableHalfOpen[T]) Clamped(limits CountableHalfOpen[T]) CountableHalfOpen[T] {
	return CountableHalfOpen[T]{c.HalfOpen.Clamped(limits.HalfOpen)}
}

// Equal returns true if both intervals have the same bounds.
func (c CountableHalfOpen[T]) Equal(other CountableHalfOpen[T]) bool {
	return c.HalfOpen.Equal(other.HalfOpen)
}

// ToClosed returns the closed interval that contains the same elements. It returns ErrEmptyRangeConversion if the
// interval is empty.
func (c CountableHalfOpen[T]) ToClosed() (CountableClosed[T], error) {
	if c.IsEmpty() {
		return CountableClosed[T]{}, ierrors.Wrapf(ErrEmptyRangeConversion, "failed to convert %v", c)
	}

	return NewCountableClosedUnchecked(c.lower, advance(c.upper, -1)), nil
}

// StartIndex returns the position of the first element (the lower bound).
func (c CountableHalfOpen[T]) StartIndex() T {
	return c.lower
}

// EndIndex returns the position after the last element (the upper bound).
func (c CountableHalfOpen[T]) EndIndex() T {
	return c.upper
}

// Successor returns the position after the given one. It panics if position is not in [lower .. upper).
func (c CountableHalfOpen[T]) Successor(position T) T {
	return successor(c.bounds, position)
}

// Predecessor returns the position before the given one. It panics if position is not in (lower .. upper].
func (c CountableHalfOpen[T]) Predecessor(position T) T {
	return predecessor(c.bounds, position)
}

// Offset returns the position n steps away from the given one. It panics if the result is not in [lower .. upper].
func (c CountableHalfOpen[T]) Offset(position T, n int) T {
	return offset(c.bounds, position, n)
}

// Distance returns the number of steps between the two positions.
func (c CountableHalfOpen[T]) Distance(from, to T) int {
	return from.Distance(to)
}

// At returns the element at the given position. It panics if the interval does not contain the position.
func (c CountableHalfOpen[T]) At(position T) T {
	if !c.Contains(position) {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "%v does not contain %v", c, position))
	}

	return position
}

// ForEach iterates through the elements in ascending order until the callback returns false.
func (c CountableHalfOpen[T]) ForEach(callback func(element T) bool) {
	forEach(c.lower, c.Count(), callback)
}

// GoString returns a debug representation of the interval.
func (c CountableHalfOpen[T]) GoString() string {
	return c.goString("CountableHalfOpen")
}
