package vecbit

import (
	"errors"
	"fmt"
)

// Validation is fail-fast: constructors and mutators reject bad arguments
// immediately rather than clamping or wrapping them. Indexed accessors on
// Slice and Vec panic on out-of-range positions, like the built-in slice
// types; everything that builds or resizes a descriptor returns an error.
var (
	// ErrNilBase is returned when a non-empty span is given a nil base
	// pointer.
	ErrNilBase = errors.New("vecbit: nil base pointer")

	// ErrMisaligned is returned when a base pointer is not aligned to the
	// storage element size.
	ErrMisaligned = errors.New("vecbit: base pointer not aligned to element size")

	// ErrIndexRange is returned for bit positions outside [0, width).
	ErrIndexRange = errors.New("vecbit: bit index out of range")

	// ErrTailRange is returned for tail positions outside (0, width].
	ErrTailRange = errors.New("vecbit: tail position out of range")

	// ErrTooManyBits is returned when a length exceeds MaxBits.
	ErrTooManyBits = errors.New("vecbit: bit count exceeds MaxBits")

	// ErrTooManyElements is returned when a span would touch more than
	// MaxElements storage elements.
	ErrTooManyElements = errors.New("vecbit: element count exceeds MaxElements")

	// ErrNotOneBit is returned by Order.Index for masks that do not select
	// exactly one bit.
	ErrNotOneBit = errors.New("vecbit: mask does not select exactly one bit")

	// ErrEmpty is returned when shrinking an already empty span.
	ErrEmpty = errors.New("vecbit: empty sequence")

	// ErrParse is returned for malformed textual bit literals.
	ErrParse = errors.New("vecbit: invalid bit literal")

	// ErrCorrupt is returned for malformed serialized data.
	ErrCorrupt = errors.New("vecbit: malformed serialized data")
)

// RangeError details a rejected index, tail, or size argument. It unwraps
// to one of the sentinel errors above, so errors.Is works against the
// category.
type RangeError struct {
	Err   error
	Value uint64
	Max   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: got %d, max %d", e.Err, e.Value, e.Max)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
