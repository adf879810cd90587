package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
)

// bounds is the pair of end points that is shared by all interval types.
type bounds[T Bound[T]] struct {
	lower T
	upper T
}

// newBounds returns the bounds for the given end points or ErrInvalidBounds if lower is bigger than upper.
func newBounds[T Bound[T]](lower, upper T) (bounds[T], error) {
	if less(upper, lower) {
		return bounds[T]{}, ierrors.Wrapf(ErrInvalidBounds, "lower bound %v is bigger than upper bound %v", lower, upper)
	}

	return bounds[T]{lower: lower, upper: upper}, nil
}

// LowerBound returns the lower end point of the interval.
func (b bounds[T]) LowerBound() T {
	return b.lower
}

// UpperBound returns the upper end point of the interval.
func (b bounds[T]) UpperBound() T {
	return b.upper
}

func (b bounds[T]) equal(other bounds[T]) bool {
	return equal(b.lower, other.lower) && equal(b.upper, other.upper)
}

// clamped moves both end points into the limits. If b and limits are disjoint, both end points collapse onto the
// closest end point of limits.
func (b bounds[T]) clamped(limits bounds[T]) bounds[T] {
	lower := b.lower
	switch {
	case less(b.lower, limits.lower):
		lower = limits.lower
	case less(limits.upper, b.lower):
		lower = limits.upper
	}

	upper := b.upper
	switch {
	case less(limits.upper, b.upper):
		upper = limits.upper
	case less(b.upper, limits.lower):
		upper = limits.lower
	}

	return bounds[T]{lower: lower, upper: upper}
}

func (b bounds[T]) format(separator string) string {
	return fmt.Sprintf("%v%s%v", b.lower, separator, b.upper)
}

func (b bounds[T]) goString(name string) string {
	return stringify.Struct(name,
		stringify.NewStructField("lowerBound", fmt.Sprintf("%#v", b.lower)),
		stringify.NewStructField("upperBound", fmt.Sprintf("%#v", b.upper)),
	)
}

// region enumeration //////////////////////////////////////////////////////////////////////////////////////////////////

// The following functions implement the index domain of the countable intervals. Every element is its own index and
// positions are valid in [lower, upper] for both shapes.

func successor[T DiscreteBound[T]](b bounds[T], position T) T {
	if less(position, b.lower) || !less(position, b.upper) {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "no successor of %v in %v", position, b.format(", ")))
	}

	return advance(position, 1)
}

func predecessor[T DiscreteBound[T]](b bounds[T], position T) T {
	if !less(b.lower, position) || less(b.upper, position) {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "no predecessor of %v in %v", position, b.format(", ")))
	}

	return advance(position, -1)
}

func offset[T DiscreteBound[T]](b bounds[T], position T, n int) T {
	result, ok := position.Advance(n)
	if !ok || less(result, b.lower) || less(b.upper, result) {
		panic(ierrors.Wrapf(ErrIndexOutOfRange, "offset %d from %v leaves %v", n, position, b.format(", ")))
	}

	return result
}

func forEach[T DiscreteBound[T]](first T, count int, callback func(element T) bool) {
	for element, i := first, 0; i < count; i++ {
		if !callback(element) {
			return
		}

		if i+1 < count {
			element = advance(element, 1)
		}
	}
}

// advance is used where the caller has already proven that the result is representable.
func advance[T DiscreteBound[T]](value T, n int) T {
	result, ok := value.Advance(n)
	if !ok {
		panic(ierrors.Wrapf(ErrBoundOverflow, "failed to advance %v by %d", value, n))
	}

	return result
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
