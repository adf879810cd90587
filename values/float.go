package values

import (
	"strconv"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Float64Value is a wrapper for float64 values that makes them usable as the bounds of (continuous) intervals. NaN is
// not ordered and must not be used as a bound.
type Float64Value float64

// Float64ValueFromMarshalUtil unmarshals a Float64Value using a MarshalUtil (for easier unmarshalling).
func Float64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Float64Value, error) {
	value, err := readValue(marshalUtil, Float64ValueType, marshalUtil.ReadFloat64)

	return Float64Value(value), err
}

// Type returns the Type of the value.
func (f Float64Value) Type() Type {
	return Float64ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (f Float64Value) Compare(other Float64Value) int {
	return lo.Comparator(f, other)
}

// Bytes returns a marshaled version of the value.
func (f Float64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Float64Size).
		Write(Float64ValueType).
		WriteFloat64(float64(f)).
		Bytes()
}

// String returns a human-readable version of the value.
func (f Float64Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// GoString returns the debug representation of the value.
func (f Float64Value) GoString() string {
	return "Float64Value(" + f.String() + ")"
}
