package imms

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange  = errors.New("immediate value out of range")
	ErrUnknownKind = errors.New("unknown immediate field kind")
)

// Returned when constructing an immediate from a logical value outside of the
// [Min, Max) range of the field. Matches ErrOutOfRange under errors.Is
type OutOfRangeError struct {
	// Name of the field layout
	Field string
	// Offending logical value
	Value int64
	// Lowest valid value
	Min int64
	// First value past the highest valid value
	Max int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%v: %v does not fit field %v, expected [%v, %v)", ErrOutOfRange, e.Value, e.Field, e.Min, e.Max)
}

func (e *OutOfRangeError) Unwrap() error {
	return ErrOutOfRange
}
