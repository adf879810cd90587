// Package values contains Bound implementations for the built-in integer, float and string types so they can be used
// as the end points of intervals. The integer types are discrete and can be used with the countable intervals.
package values

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/interval"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Type represents the type of a value and prefixes its marshaled version.
type Type int8

const (
	// Int8ValueType represents the type of Int8Values.
	Int8ValueType Type = iota

	// Int16ValueType represents the type of Int16Values.
	Int16ValueType

	// Int32ValueType represents the type of Int32Values.
	Int32ValueType

	// Int64ValueType represents the type of Int64Values.
	Int64ValueType

	// Uint8ValueType represents the type of Uint8Values.
	Uint8ValueType

	// Uint16ValueType represents the type of Uint16Values.
	Uint16ValueType

	// Uint32ValueType represents the type of Uint32Values.
	Uint32ValueType

	// Uint64ValueType represents the type of Uint64Values.
	Uint64ValueType

	// Float64ValueType represents the type of Float64Values.
	Float64ValueType

	// StringValueType represents the type of StringValues.
	StringValueType
)

// TypeNames contains a dictionary of the names of Types.
var TypeNames = [...]string{
	"Int8ValueType",
	"Int16ValueType",
	"Int32ValueType",
	"Int64ValueType",
	"Uint8ValueType",
	"Uint16ValueType",
	"Uint32ValueType",
	"Uint64ValueType",
	"Float64ValueType",
	"StringValueType",
}

// TypeFromMarshalUtil unmarshals a Type using a MarshalUtil (for easier unmarshalling).
func TypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (valueType Type, err error) {
	typeByte, err := marshalUtil.ReadByte()
	if err != nil {
		return valueType, ierrors.Wrapf(interval.ErrParseBytesFailed, "failed to read Type: %w", err)
	}

	if valueType = Type(typeByte); valueType < Int8ValueType || valueType > StringValueType {
		return valueType, ierrors.Wrapf(interval.ErrParseBytesFailed, "unsupported Type (%X)", typeByte)
	}

	return valueType, nil
}

// Bytes returns a marshaled version of the Type.
func (t Type) Bytes() []byte {
	return []byte{byte(t)}
}

// String returns a human-readable representation of the Type.
func (t Type) String() string {
	if t < 0 || int(t) >= len(TypeNames) {
		return fmt.Sprintf("Type(%X)", uint8(t))
	}

	return TypeNames[t]
}

// readValue checks the Type prefix and reads the raw value that follows it.
func readValue[V any](marshalUtil *marshalutil.MarshalUtil, expectedType Type, read func() (V, error)) (value V, err error) {
	valueType, err := TypeFromMarshalUtil(marshalUtil)
	if err != nil {
		return value, err
	}
	if valueType != expectedType {
		return value, ierrors.Wrapf(interval.ErrParseBytesFailed, "invalid Type (%s), expected %s", valueType, expectedType)
	}

	if value, err = read(); err != nil {
		return value, ierrors.Wrapf(interval.ErrParseBytesFailed, "failed to read %s: %w", expectedType, err)
	}

	return value, nil
}
