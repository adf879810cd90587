package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// BoundType tells whether the upper end point of an interval is part of the interval (BoundTypeClosed) or not
// (BoundTypeOpen). It is also the tag that identifies the shape of a marshaled interval.
type BoundType uint8

const (
	// BoundTypeOpen marks an upper bound that is excluded from the interval.
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed marks an upper bound that is included in the interval.
	BoundTypeClosed
)

// BoundTypeFromBytes unmarshals a BoundType from a sequence of bytes.
func BoundTypeFromBytes(boundTypeBytes []byte) (boundType BoundType, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(boundTypeBytes)
	if boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		return boundType, 0, ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")
	}

	return boundType, marshalUtil.ReadOffset(), nil
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (BoundType, error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundType: %w", err)
	}

	switch boundType := BoundType(boundTypeByte); boundType {
	case BoundTypeOpen, BoundTypeClosed:
		return boundType, nil
	default:
		return boundType, ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundType (%X)", boundTypeByte)
	}
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	switch b {
	case BoundTypeOpen:
		return "BoundTypeOpen"
	case BoundTypeClosed:
		return "BoundTypeClosed"
	default:
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}
}
