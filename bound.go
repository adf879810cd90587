package interval

// Bound is the capability a type needs to be used as the end point of an interval. Compare returns 0 if other is
// identical, -1 if other is bigger and 1 if other is smaller than the receiver.
type Bound[T any] interface {
	Compare(other T) int
}

// DiscreteBound is a Bound that can be stepped through by a signed stride. It is required by the countable interval
// types, which can be enumerated and counted.
type DiscreteBound[T any] interface {
	Bound[T]

	// Advance returns the value that lies n steps away from the receiver. The flag is false if the result is not
	// representable by the type.
	Advance(n int) (T, bool)

	// Distance returns the number of steps that lie between the receiver and other.
	Distance(other T) int
}

// SerializableBound is a Bound that can be marshaled (see Bytes).
type SerializableBound[T any] interface {
	Bound[T]

	Bytes() []byte
}

func less[T Bound[T]](a, b T) bool {
	return a.Compare(b) < 0
}

func lessOrEqual[T Bound[T]](a, b T) bool {
	return a.Compare(b) <= 0
}

func equal[T Bound[T]](a, b T) bool {
	return a.Compare(b) == 0
}
