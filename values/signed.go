package values

import (
	"strconv"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// region Int8Value ////////////////////////////////////////////////////////////////////////////////////////////////////

// Int8Value is a wrapper for int8 values that makes them usable as the bounds of countable intervals.
type Int8Value int8

// Int8ValueFromMarshalUtil unmarshals Int8Value using a MarshalUtil (for easier unmarshalling).
func Int8ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Int8Value, error) {
	value, err := readValue(marshalUtil, Int8ValueType, marshalUtil.ReadInt8)

	return Int8Value(value), err
}

// Type returns the Type of the value.
func (v Int8Value) Type() Type {
	return Int8ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Int8Value) Compare(other Int8Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into int8.
func (v Int8Value) Advance(n int) (Int8Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Int8Value) Distance(other Int8Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Int8Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int8Size).
		Write(Int8ValueType).
		WriteInt8(int8(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Int8Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Int8Value) GoString() string {
	return "Int8Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int16Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int16Value is a wrapper for int16 values that makes them usable as the bounds of countable intervals.
type Int16Value int16

// Int16ValueFromMarshalUtil unmarshals Int16Value using a MarshalUtil (for easier unmarshalling).
func Int16ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Int16Value, error) {
	value, err := readValue(marshalUtil, Int16ValueType, marshalUtil.ReadInt16)

	return Int16Value(value), err
}

// Type returns the Type of the value.
func (v Int16Value) Type() Type {
	return Int16ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Int16Value) Compare(other Int16Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into int16.
func (v Int16Value) Advance(n int) (Int16Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Int16Value) Distance(other Int16Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Int16Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int16Size).
		Write(Int16ValueType).
		WriteInt16(int16(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Int16Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Int16Value) GoString() string {
	return "Int16Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int32Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int32Value is a wrapper for int32 values that makes them usable as the bounds of countable intervals.
type Int32Value int32

// Int32ValueFromMarshalUtil unmarshals Int32Value using a MarshalUtil (for easier unmarshalling).
func Int32ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Int32Value, error) {
	value, err := readValue(marshalUtil, Int32ValueType, marshalUtil.ReadInt32)

	return Int32Value(value), err
}

// Type returns the Type of the value.
func (v Int32Value) Type() Type {
	return Int32ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Int32Value) Compare(other Int32Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into int32.
func (v Int32Value) Advance(n int) (Int32Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Int32Value) Distance(other Int32Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Int32Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int32Size).
		Write(Int32ValueType).
		WriteInt32(int32(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Int32Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Int32Value) GoString() string {
	return "Int32Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Int64Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Value is a wrapper for int64 values that makes them usable as the bounds of countable intervals.
type Int64Value int64

// Int64ValueFromMarshalUtil unmarshals Int64Value using a MarshalUtil (for easier unmarshalling).
func Int64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Int64Value, error) {
	value, err := readValue(marshalUtil, Int64ValueType, marshalUtil.ReadInt64)

	return Int64Value(value), err
}

// Type returns the Type of the value.
func (v Int64Value) Type() Type {
	return Int64ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Int64Value) Compare(other Int64Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into int64.
func (v Int64Value) Advance(n int) (Int64Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Int64Value) Distance(other Int64Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Int64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int64Size).
		Write(Int64ValueType).
		WriteInt64(int64(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Int64Value) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Int64Value) GoString() string {
	return "Int64Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
