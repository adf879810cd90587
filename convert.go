package interval

// CountableHalfOpenFrom converts any interval over a DiscreteBound into a CountableHalfOpen interval that contains the
// same elements. Converting a closed interval returns ErrBoundOverflow if its upper bound can not be advanced.
func CountableHalfOpenFrom[T DiscreteBound[T]](source Interval[T]) (CountableHalfOpen[T], error) {
	if source.UpperBoundType() == BoundTypeOpen {
		return NewCountableHalfOpenUnchecked(source.LowerBound(), source.UpperBound()), nil
	}

	return NewCountableClosedUnchecked(source.LowerBound(), source.UpperBound()).ToHalfOpen()
}

// CountableClosedFrom converts any interval over a DiscreteBound into a CountableClosed interval that contains the
// same elements. Converting a half-open interval returns ErrEmptyRangeConversion if it is empty.
func CountableClosedFrom[T DiscreteBound[T]](source Interval[T]) (CountableClosed[T], error) {
	if source.UpperBoundType() == BoundTypeClosed {
		return NewCountableClosedUnchecked(source.LowerBound(), source.UpperBound()), nil
	}

	return NewCountableHalfOpenUnchecked(source.LowerBound(), source.UpperBound()).ToClosed()
}

// HalfOpenFrom works like CountableHalfOpenFrom but returns the continuous HalfOpen type.
func HalfOpenFrom[T DiscreteBound[T]](source Interval[T]) (HalfOpen[T], error) {
	converted, err := CountableHalfOpenFrom(source)

	return converted.HalfOpen, err
}

// ClosedFrom works like CountableClosedFrom but returns the continuous Closed type.
func ClosedFrom[T DiscreteBound[T]](source Interval[T]) (Closed[T], error) {
	converted, err := CountableClosedFrom(source)

	return converted.Closed, err
}
