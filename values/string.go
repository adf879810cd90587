package values

import (
	"math"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// StringValue is a wrapper for strings that makes them usable as the bounds of (continuous) intervals. Strings are
// ordered lexicographically by their bytes.
type StringValue string

// StringValueFromMarshalUtil unmarshals a StringValue using a MarshalUtil (for easier unmarshalling).
func StringValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (StringValue, error) {
	length, err := readValue(marshalUtil, StringValueType, marshalUtil.ReadUint16)
	if err != nil {
		return "", err
	}

	stringBytes, err := marshalUtil.ReadBytes(int(length))
	if err != nil {
		return "", ierrors.Wrapf(interval.ErrParseBytesFailed, "failed to read %d string bytes: %w", length, err)
	}

	return StringValue(stringBytes), nil
}

// Type returns the Type of the value.
func (s StringValue) Type() Type {
	return StringValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (s StringValue) Compare(other StringValue) int {
	return lo.Comparator(s, other)
}

// Bytes returns a marshaled version of the value. It panics if the string is longer than math.MaxUint16 bytes.
func (s StringValue) Bytes() []byte {
	if len(s) > math.MaxUint16 {
		panic(ierrors.Wrapf(interval.ErrBoundOverflow, "string of %d bytes is too long to be marshaled", len(s)))
	}

	return marshalutil.New(1 + marshalutil.Uint16Size + len(s)).
		Write(StringValueType).
		WriteUint16(uint16(len(s))).
		WriteBytes([]byte(s)).
		Bytes()
}

// String returns a human-readable version of the value.
func (s StringValue) String() string {
	return string(s)
}

// GoString returns the debug representation of the value.
func (s StringValue) GoString() string {
	return "StringValue(" + strconv.Quote(string(s)) + ")"
}
