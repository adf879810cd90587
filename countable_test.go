package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/interval/values"
)

// TestCountable_Count tests the number of elements of both countable shapes.
func TestCountable_Count(t *testing.T) {
	require.Equal(t, 5, interval.MustCountableHalfOpen[values.Int64Value](3, 8).Count())
	require.Equal(t, 6, interval.MustCountableClosed[values.Int64Value](3, 8).Count())
	require.Equal(t, 0, interval.MustCountableHalfOpen[values.Int64Value](3, 3).Count())
	require.Equal(t, 1, interval.MustCountableClosed[values.Int64Value](3, 3).Count())
	require.Equal(t, 256, interval.MustCountableClosed[values.Uint8Value](0, math.MaxUint8).Count())
	require.Equal(t, 255, interval.MustCountableHalfOpen[values.Int8Value](math.MinInt8, math.MaxInt8).Count())

	requirePanicsWith(t, interval.ErrBoundOverflow, func() {
		interval.MustCountableClosed[values.Int64Value](0, math.MaxInt64).Count()
	})
	requirePanicsWith(t, interval.ErrBoundOverflow, func() {
		interval.MustCountableHalfOpen[values.Uint64Value](0, math.MaxUint64).Count()
	})
}

// TestCountable_Constructors tests the constructors of the countable intervals.
func TestCountable_Constructors(t *testing.T) {
	_, err := interval.NewCountableHalfOpen[values.Int32Value](2, 1)
	require.ErrorIs(t, err, interval.ErrInvalidBounds)

	_, err = interval.NewCountableClosed[values.Int32Value](2, 1)
	require.ErrorIs(t, err, interval.ErrInvalidBounds)

	halfOpen := interval.MustHalfOpen[values.Int32Value](1, 4)
	require.Equal(t, halfOpen, interval.CountableHalfOpenOf(halfOpen).HalfOpen)
	require.Equal(t, interval.MustCountableHalfOpen[values.Int32Value](1, 4), interval.CountableHalfOpenOf(halfOpen))

	closed := interval.MustClosed[values.Int32Value](1, 4)
	require.Equal(t, interval.MustCountableClosed[values.Int32Value](1, 4), interval.CountableClosedOf(closed))
	require.Equal(t, interval.NewCountableClosedUnchecked[values.Int32Value](1, 4), interval.CountableClosedOf(closed))

	requirePanicsWith(t, interval.ErrInvalidBounds, func() {
		interval.MustCountableHalfOpen[values.Int32Value](2, 1)
	})
	requirePanicsWith(t, interval.ErrInvalidBounds, func() {
		interval.MustCountableClosed[values.Int32Value](2, 1)
	})
}

// TestCountable_Queries tests that the countable intervals keep the semantics of their continuous counterparts.
func TestCountable_Queries(t *testing.T) {
	halfOpen := interval.MustCountableHalfOpen[values.Int64Value](0, 20)
	require.True(t, halfOpen.Contains(19))
	require.False(t, halfOpen.Contains(20))
	require.True(t, halfOpen.Overlaps(interval.MustCountableHalfOpen[values.Int64Value](10, 1000)))
	require.Equal(t, interval.MustCountableHalfOpen[values.Int64Value](10, 20), halfOpen.Clamped(interval.MustCountableHalfOpen[values.Int64Value](10, 1000)))
	require.True(t, halfOpen.Equal(interval.MustCountableHalfOpen[values.Int64Value](0, 20)))
	require.Equal(t, "0..<20", halfOpen.String())
	require.Contains(t, halfOpen.GoString(), "CountableHalfOpen")

	closed := interval.MustCountableClosed[values.Int64Value](0, 20)
	require.True(t, closed.Contains(20))
	require.False(t, closed.IsEmpty())
	require.Equal(t, interval.MustCountableClosed[values.Int64Value](10, 10), interval.MustCountableClosed[values.Int64Value](0, 5).Clamped(interval.MustCountableClosed[values.Int64Value](10, 1000)))
	require.False(t, closed.Equal(interval.MustCountableClosed[values.Int64Value](0, 21)))
	require.Equal(t, "0...20", closed.String())
	require.Contains(t, closed.GoString(), "CountableClosed")
}

// TestCountableHalfOpen_Enumeration tests the index domain of CountableHalfOpen.
func TestCountableHalfOpen_Enumeration(t *testing.T) {
	halfOpen := interval.MustCountableHalfOpen[values.Int16Value](3, 8)

	require.Equal(t, values.Int16Value(3), halfOpen.StartIndex())
	require.Equal(t, values.Int16Value(8), halfOpen.EndIndex())

	require.Equal(t, values.Int16Value(4), halfOpen.Successor(3))
	require.Equal(t, values.Int16Value(8), halfOpen.Successor(7))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Successor(8) })
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Successor(2) })

	require.Equal(t, values.Int16Value(7), halfOpen.Predecessor(8))
	require.Equal(t, values.Int16Value(3), halfOpen.Predecessor(4))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Predecessor(3) })
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Predecessor(9) })

	require.Equal(t, values.Int16Value(8), halfOpen.Offset(3, 5))
	require.Equal(t, values.Int16Value(3), halfOpen.Offset(8, -5))
	require.Equal(t, values.Int16Value(5), halfOpen.Offset(5, 0))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Offset(3, 6) })
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.Offset(3, -1) })

	require.Equal(t, 5, halfOpen.Distance(3, 8))
	require.Equal(t, -2, halfOpen.Distance(6, 4))

	require.Equal(t, values.Int16Value(3), halfOpen.At(3))
	require.Equal(t, values.Int16Value(7), halfOpen.At(7))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.At(8) })
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { halfOpen.At(0) })

	require.Equal(t, []values.Int16Value{3, 4, 5, 6, 7}, collect(halfOpen.ForEach))
	require.Empty(t, collect(interval.MustCountableHalfOpen[values.Int16Value](3, 3).ForEach))
}

// TestCountableClosed_Enumeration tests the index domain of CountableClosed.
func TestCountableClosed_Enumeration(t *testing.T) {
	closed := interval.MustCountableClosed[values.Uint8Value](250, math.MaxUint8)

	require.Equal(t, values.Uint8Value(250), closed.StartIndex())
	require.Equal(t, values.Uint8Value(math.MaxUint8), closed.EndIndex())

	require.Equal(t, values.Uint8Value(math.MaxUint8), closed.Successor(254))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { closed.Successor(math.MaxUint8) })

	require.Equal(t, values.Uint8Value(254), closed.Predecessor(math.MaxUint8))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { closed.Predecessor(250) })

	require.Equal(t, values.Uint8Value(math.MaxUint8), closed.Offset(250, 5))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { closed.Offset(250, 6) })
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { closed.Offset(250, -251) })

	require.Equal(t, -5, closed.Distance(math.MaxUint8, 250))

	require.Equal(t, values.Uint8Value(math.MaxUint8), closed.At(math.MaxUint8))
	requirePanicsWith(t, interval.ErrIndexOutOfRange, func() { closed.At(249) })

	// the walk must stop at the upper bound without advancing past the maximum value
	require.Equal(t, []values.Uint8Value{250, 251, 252, 253, 254, 255}, collect(closed.ForEach))
	require.Equal(t, []values.Uint8Value{250, 251}, collectFirst(closed.ForEach, 2))
}

// collect returns all elements that are passed to the callback of forEach.
func collect[T any](forEach func(callback func(element T) bool)) []T {
	return collectFirst(forEach, math.MaxInt)
}

// collectFirst returns the first limit elements that are passed to the callback of forEach.
func collectFirst[T any](forEach func(callback func(element T) bool), limit int) (elements []T) {
	forEach(func(element T) bool {
		elements = append(elements, element)

		return len(elements) < limit
	})

	return elements
}
