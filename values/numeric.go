package values

import (
	"math"
	"unsafe"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/interval"
)

// limits returns the smallest and the biggest value of the integer type T.
func limits[T constraints.Integer]() (minValue T, maxValue T) {
	var zero T
	if allBits := ^zero; allBits > 0 {
		return zero, allBits
	}

	minValue = T(1) << (unsafe.Sizeof(zero)*8 - 1)

	return minValue, ^minValue
}

// advance returns value + n and false if the result does not fit into T. The arithmetic is done on the two's
// complement uint64 representation, which is exact for all integer types of up to 64 bits.
func advance[T constraints.Integer](value T, n int) (T, bool) {
	minValue, maxValue := limits[T]()

	if n >= 0 {
		if uint64(n) > uint64(maxValue)-uint64(value) {
			return value, false
		}

		return T(uint64(value) + uint64(n)), true
	}

	magnitude := uint64(-(n + 1)) + 1
	if magnitude > uint64(value)-uint64(minValue) {
		return value, false
	}

	return T(uint64(value) - magnitude), true
}

// distance returns to - from. It panics with interval.ErrBoundOverflow if the result does not fit into an int.
func distance[T constraints.Integer](from, to T) int {
	if from <= to {
		delta := uint64(to) - uint64(from)
		if delta > math.MaxInt {
			panic(ierrors.Wrapf(interval.ErrBoundOverflow, "distance from %d to %d exceeds int", from, to))
		}

		return int(delta)
	}

	delta := uint64(from) - uint64(to)
	if delta > uint64(math.MaxInt)+1 {
		panic(ierrors.Wrapf(interval.ErrBoundOverflow, "distance from %d to %d exceeds int", from, to))
	}

	return -int(delta)
}
