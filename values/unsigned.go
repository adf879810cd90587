package values

import (
	"strconv"

	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// region Uint8Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Uint8Value is a wrapper for uint8 values that makes them usable as the bounds of countable intervals.
type Uint8Value uint8

// Uint8ValueFromMarshalUtil unmarshals Uint8Value using a MarshalUtil (for easier unmarshalling).
func Uint8ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Uint8Value, error) {
	value, err := readValue(marshalUtil, Uint8ValueType, marshalUtil.ReadUint8)

	return Uint8Value(value), err
}

// Type returns the Type of the value.
func (v Uint8Value) Type() Type {
	return Uint8ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Uint8Value) Compare(other Uint8Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into uint8.
func (v Uint8Value) Advance(n int) (Uint8Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Uint8Value) Distance(other Uint8Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Uint8Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint8Size).
		Write(Uint8ValueType).
		WriteUint8(uint8(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Uint8Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Uint8Value) GoString() string {
	return "Uint8Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint16Value //////////////////////////////////////////////////////////////////////////////////////////////////

// Uint16Value is a wrapper for uint16 values that makes them usable as the bounds of countable intervals.
type Uint16Value uint16

// Uint16ValueFromMarshalUtil unmarshals Uint16Value using a MarshalUtil (for easier unmarshalling).
func Uint16ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Uint16Value, error) {
	value, err := readValue(marshalUtil, Uint16ValueType, marshalUtil.ReadUint16)

	return Uint16Value(value), err
}

// Type returns the Type of the value.
func (v Uint16Value) Type() Type {
	return Uint16ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Uint16Value) Compare(other Uint16Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into uint16.
func (v Uint16Value) Advance(n int) (Uint16Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Uint16Value) Distance(other Uint16Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Uint16Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint16Size).
		Write(Uint16ValueType).
		WriteUint16(uint16(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Uint16Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Uint16Value) GoString() string {
	return "Uint16Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint32Value //////////////////////////////////////////////////////////////////////////////////////////////////

// Uint32Value is a wrapper for uint32 values that makes them usable as the bounds of countable intervals.
type Uint32Value uint32

// Uint32ValueFromMarshalUtil unmarshals Uint32Value using a MarshalUtil (for easier unmarshalling).
func Uint32ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Uint32Value, error) {
	value, err := readValue(marshalUtil, Uint32ValueType, marshalUtil.ReadUint32)

	return Uint32Value(value), err
}

// Type returns the Type of the value.
func (v Uint32Value) Type() Type {
	return Uint32ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Uint32Value) Compare(other Uint32Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into uint32.
func (v Uint32Value) Advance(n int) (Uint32Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Uint32Value) Distance(other Uint32Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Uint32Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint32Size).
		Write(Uint32ValueType).
		WriteUint32(uint32(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Uint32Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Uint32Value) GoString() string {
	return "Uint32Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint64Value //////////////////////////////////////////////////////////////////////////////////////////////////

// Uint64Value is a wrapper for uint64 values that makes them usable as the bounds of countable intervals.
type Uint64Value uint64

// Uint64ValueFromMarshalUtil unmarshals Uint64Value using a MarshalUtil (for easier unmarshalling).
func Uint64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Uint64Value, error) {
	value, err := readValue(marshalUtil, Uint64ValueType, marshalUtil.ReadUint64)

	return Uint64Value(value), err
}

// Type returns the Type of the value.
func (v Uint64Value) Type() Type {
	return Uint64ValueType
}

// Compare returns 0 if other is identical, -1 if other is bigger and 1 if other is smaller.
func (v Uint64Value) Compare(other Uint64Value) int {
	return lo.Comparator(v, other)
}

// Advance returns the value n steps away and false if the result does not fit into uint64.
func (v Uint64Value) Advance(n int) (Uint64Value, bool) {
	return advance(v, n)
}

// Distance returns the number of steps from v to other.
func (v Uint64Value) Distance(other Uint64Value) int {
	return distance(v, other)
}

// Bytes returns a marshaled version of the value.
func (v Uint64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint64Size).
		Write(Uint64ValueType).
		WriteUint64(uint64(v)).
		Bytes()
}

// String returns a human-readable version of the value.
func (v Uint64Value) String() string {
	return strconv.FormatUint(uint64(v), 10)
}

// GoString returns the debug representation of the value.
func (v Uint64Value) GoString() string {
	return "Uint64Value(" + v.String() + ")"
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
