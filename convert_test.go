package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/interval/values"
)

// TestCountableHalfOpen_ToClosed tests the conversion of half-open intervals into closed ones.
func TestCountableHalfOpen_ToClosed(t *testing.T) {
	closed, err := interval.MustCountableHalfOpen[values.Int64Value](3, 8).ToClosed()
	require.NoError(t, err)
	require.Equal(t, interval.MustCountableClosed[values.Int64Value](3, 7), closed)

	closed8, err := interval.MustCountableHalfOpen[values.Int8Value](math.MinInt8, math.MinInt8+1).ToClosed()
	require.NoError(t, err)
	require.Equal(t, interval.MustCountableClosed[values.Int8Value](math.MinInt8, math.MinInt8), closed8)

	_, err = interval.MustCountableHalfOpen[values.Int64Value](3, 3).ToClosed()
	require.ErrorIs(t, err, interval.ErrEmptyRangeConversion)
}

// TestCountableClosed_ToHalfOpen tests the conversion of closed intervals into half-open ones.
func TestCountableClosed_ToHalfOpen(t *testing.T) {
	halfOpen, err := interval.MustCountableClosed[values.Int64Value](3, 7).ToHalfOpen()
	require.NoError(t, err)
	require.Equal(t, interval.MustCountableHalfOpen[values.Int64Value](3, 8), halfOpen)

	halfOpen16, err := interval.MustCountableClosed[values.Uint16Value](0, math.MaxUint16-1).ToHalfOpen()
	require.NoError(t, err)
	require.Equal(t, values.Uint16Value(math.MaxUint16), halfOpen16.UpperBound())

	_, err = interval.MustCountableClosed[values.Uint16Value](0, math.MaxUint16).ToHalfOpen()
	require.ErrorIs(t, err, interval.ErrBoundOverflow)

	_, err = interval.MustCountableClosed[values.Int64Value](math.MaxInt64, math.MaxInt64).ToHalfOpen()
	require.ErrorIs(t, err, interval.ErrBoundOverflow)
}

// TestConversions tests the generic conversion functions between all interval types.
func TestConversions(t *testing.T) {
	halfOpen := interval.MustHalfOpen[values.Int32Value](3, 8)
	closed := interval.MustClosed[values.Int32Value](3, 7)
	countableHalfOpen := interval.MustCountableHalfOpen[values.Int32Value](3, 8)
	countableClosed := interval.MustCountableClosed[values.Int32Value](3, 7)

	for _, source := range []interval.Interval[values.Int32Value]{halfOpen, closed, countableHalfOpen, countableClosed} {
		convertedHalfOpen, err := interval.HalfOpenFrom[values.Int32Value](source)
		require.NoError(t, err)
		require.Equal(t, halfOpen, convertedHalfOpen)

		convertedClosed, err := interval.ClosedFrom[values.Int32Value](source)
		require.NoError(t, err)
		require.Equal(t, closed, convertedClosed)

		convertedCountableHalfOpen, err := interval.CountableHalfOpenFrom[values.Int32Value](source)
		require.NoError(t, err)
		require.Equal(t, countableHalfOpen, convertedCountableHalfOpen)

		convertedCountableClosed, err := interval.CountableClosedFrom[values.Int32Value](source)
		require.NoError(t, err)
		require.Equal(t, countableClosed, convertedCountableClosed)
	}

	_, err := interval.ClosedFrom[values.Int32Value](interval.MustHalfOpen[values.Int32Value](3, 3))
	require.ErrorIs(t, err, interval.ErrEmptyRangeConversion)

	_, err = interval.CountableClosedFrom[values.Int32Value](interval.MustHalfOpen[values.Int32Value](3, 3))
	require.ErrorIs(t, err, interval.ErrEmptyRangeConversion)

	_, err = interval.HalfOpenFrom[values.Int32Value](interval.MustClosed[values.Int32Value](0, math.MaxInt32))
	require.ErrorIs(t, err, interval.ErrBoundOverflow)

	// same-shape conversions keep empty intervals
	empty, err := interval.CountableHalfOpenFrom[values.Int32Value](interval.MustHalfOpen[values.Int32Value](3, 3))
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}
