package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Bytes returns a marshaled version of the interval: the BoundType of its upper bound followed by both bounds.
func Bytes[T SerializableBound[T]](i Interval[T]) []byte {
	return marshalutil.New().
		Write(i.UpperBoundType()).
		Write(i.LowerBound()).
		Write(i.UpperBound()).
		Bytes()
}

// HalfOpenFromBytes unmarshals a HalfOpen interval from a sequence of bytes.
func HalfOpenFromBytes[T Bound[T]](intervalBytes []byte, parseBound func(*marshalutil.MarshalUtil) (T, error)) (halfOpen HalfOpen[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if halfOpen, err = HalfOpenFromMarshalUtil(marshalUtil, parseBound); err != nil {
		err = ierrors.Wrap(err, "failed to parse HalfOpen from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// HalfOpenFromMarshalUtil unmarshals a HalfOpen interval using a MarshalUtil (for easier unmarshalling).
func HalfOpenFromMarshalUtil[T Bound[T]](marshalUtil *marshalutil.MarshalUtil, parseBound func(*marshalutil.MarshalUtil) (T, error)) (HalfOpen[T], error) {
	lower, upper, err := boundsFromMarshalUtil(marshalUtil, BoundTypeOpen, parseBound)
	if err != nil {
		return HalfOpen[T]{}, err
	}

	return NewHalfOpen(lower, upper)
}

// ClosedFromBytes unmarshals a Closed interval from a sequence of bytes.
func ClosedFromBytes[T Bound[T]](intervalBytes []byte, parseBound func(*marshalutil.MarshalUtil) (T, error)) (closed Closed[T], consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if closed, err = ClosedFromMarshalUtil(marshalUtil, parseBound); err != nil {
		err = ierrors.Wrap(err, "failed to parse Closed from MarshalUtil")

		return
	}
	consumedBytes = marshalUtil.ReadOffset()

	return
}

// ClosedFromMarshalUtil unmarshals a Closed interval using a MarshalUtil (for easier unmarshalling).
func ClosedFromMarshalUtil[T Bound[T]](marshalUtil *marshalutil.MarshalUtil, parseBound func(*marshalutil.MarshalUtil) (T, error)) (Closed[T], error) {
	lower, upper, err := boundsFromMarshalUtil(marshalUtil, BoundTypeClosed, parseBound)
	if err != nil {
		return Closed[T]{}, err
	}

	return NewClosed(lower, upper)
}

func boundsFromMarshalUtil[T Bound[T]](marshalUtil *marshalutil.MarshalUtil, expectedBoundType BoundType, parseBound func(*marshalutil.MarshalUtil) (T, error)) (lower T, upper T, err error) {
	boundType, err := BoundTypeFromMarshalUtil(marshalUtil)
	if err != nil {
		return lower, upper, ierrors.Wrap(err, "failed to parse BoundType")
	}
	if boundType != expectedBoundType {
		return lower, upper, ierrors.Wrapf(ErrParseBytesFailed, "expected %s but got %s", expectedBoundType, boundType)
	}

	if lower, err = parseBound(marshalUtil); err != nil {
		return lower, upper, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse lower bound: %w", err)
	}
	if upper, err = parseBound(marshalUtil); err != nil {
		return lower, upper, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse upper bound: %w", err)
	}

	return lower, upper, nil
}
