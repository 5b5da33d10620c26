package vecbit

// Order translates between logical bit indices and single-bit element
// masks. Implementations must be bijective over [0, width) in both
// directions and must be stateless: the zero value of an Order type is
// ready to use, and generic code instantiates it freely.
type Order[T Element] interface {
	// Mask returns the mask selecting idx within an element. Exactly one
	// bit of the result is set.
	Mask(idx Index[T]) T

	// Index recovers the logical index a single-bit mask selects. It
	// returns ErrNotOneBit if the mask has zero or several bits set.
	Index(mask T) (Index[T], error)

	// Name returns the ordering's name for diagnostics.
	Name() string
}

// Msb0 numbers bits from the most significant end of the element: index 0
// is the high bit and index width-1 is the low bit. This matches how
// big-endian byte dumps read and how network protocols usually number bits.
type Msb0[T Element] struct{}

// Mask implements Order.
func (Msb0[T]) Mask(idx Index[T]) T {
	return T(1) << (BitsOf[T]() - 1 - idx.v)
}

// Index implements Order.
func (Msb0[T]) Index(mask T) (Index[T], error) {
	if PopCount(mask) != 1 {
		return Index[T]{}, ErrNotOneBit
	}
	return Index[T]{v: uint8(leadingZeros(mask))}, nil
}

// Name implements Order.
func (Msb0[T]) Name() string { return "Msb0" }

// Lsb0 numbers bits from the least significant end of the element: index 0
// is the low bit and index width-1 is the high bit. This matches the
// arithmetic value of each bit position.
type Lsb0[T Element] struct{}

// Mask implements Order.
func (Lsb0[T]) Mask(idx Index[T]) T {
	return T(1) << idx.v
}

// Index implements Order.
func (Lsb0[T]) Index(mask T) (Index[T], error) {
	if PopCount(mask) != 1 {
		return Index[T]{}, ErrNotOneBit
	}
	return Index[T]{v: uint8(trailingZeros(mask))}, nil
}

// Name implements Order.
func (Lsb0[T]) Name() string { return "Lsb0" }

// Native is the ordering used by the convenience constructors. It is a
// fixed alias for Msb0 on every platform; it never follows the host's byte
// order.
type Native[T Element] = Msb0[T]

// MaskRange returns the mask of every bit position in [from, to) under
// ordering O. An empty range yields zero. Positions at or past the element
// width are ignored.
func MaskRange[T Element, O Order[T]](from, to uint8) T {
	var o O
	var m T
	w := BitsOf[T]()
	for v := from; v < to && v < w; v++ {
		m |= o.Mask(Index[T]{v: v})
	}
	return m
}
