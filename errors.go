package interval

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrInvalidBounds is returned if an interval is created with a lower bound that is bigger than its upper bound.
	ErrInvalidBounds = ierrors.New("lower bound must not be bigger than upper bound")

	// ErrEmptyRangeConversion is returned if an empty half-open interval is converted into a closed one.
	ErrEmptyRangeConversion = ierrors.New("empty interval can not be converted to a closed interval")

	// ErrBoundOverflow is returned if a bound can not be advanced because the result is not representable.
	ErrBoundOverflow = ierrors.New("bound overflow")

	// ErrIndexOutOfRange is used when an element or position outside the interval is requested.
	ErrIndexOutOfRange = ierrors.New("index out of range")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")
)
