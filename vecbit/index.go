package vecbit

// Index is a validated bit position inside a storage element: the half-open
// range [0, width). The zero value is position 0, which is valid for every
// width.
type Index[T Element] struct {
	v uint8
}

// NewIndex validates v as a bit position inside an element of type T.
func NewIndex[T Element](v uint8) (Index[T], error) {
	if v >= BitsOf[T]() {
		return Index[T]{}, &RangeError{Err: ErrIndexRange, Value: uint64(v), Max: uint64(BitsOf[T]() - 1)}
	}
	return Index[T]{v: v}, nil
}

// MustIndex is NewIndex for positions known to be valid. It panics on a bad
// position.
func MustIndex[T Element](v uint8) Index[T] {
	idx, err := NewIndex[T](v)
	if err != nil {
		panic(err)
	}
	return idx
}

// Pos returns the bit position as an integer.
func (i Index[T]) Pos() uint8 {
	return i.v
}

// Span computes the extent of a range of live bits beginning at i: the
// number of storage elements the range touches, and the tail boundary in
// the final element. Every range-extending operation in the package funnels
// through this method; nothing recomputes the element or tail arithmetic
// independently.
//
// A zero-length range touches no elements and reinterprets the start
// position as its (possibly degenerate) tail. A range that ends exactly on
// an element boundary fills the final element: the tail is the full width,
// never zero.
func (i Index[T]) Span(bits int) (elements int, tail Tail[T]) {
	if bits < 0 {
		panic("vecbit: negative bit count")
	}
	if bits == 0 {
		return 0, Tail[T]{v: i.v}
	}
	w := int(BitsOf[T]())
	head := int(i.v)
	elements = (head + bits + w - 1) / w
	tail = Tail[T]{v: uint8((head+bits-1)%w + 1)}
	return elements, tail
}

// Tail is a validated one-past-the-end bit position inside a storage
// element: the range (0, width]. A tail of zero is degenerate and arises
// only inside the canonical empty span; NewTail never produces it.
type Tail[T Element] struct {
	v uint8
}

// NewTail validates v as a tail position inside an element of type T.
func NewTail[T Element](v uint8) (Tail[T], error) {
	if v == 0 || v > BitsOf[T]() {
		return Tail[T]{}, &RangeError{Err: ErrTailRange, Value: uint64(v), Max: uint64(BitsOf[T]())}
	}
	return Tail[T]{v: v}, nil
}

// End returns the tail position as an integer.
func (t Tail[T]) End() uint8 {
	return t.v
}
