// Package vecbit provides bit-addressable sequences over unsigned integer
// storage.
//
// A sequence is described by three independent choices: the storage element
// width (any fixed-width unsigned integer), a bit ordering strategy that maps
// logical bit indices to positions inside an element, and a span of element
// memory. Sequences may begin and end at any bit position, not only at
// element boundaries, so the partially occupied edge elements of one sequence
// may be shared with its neighbors. All single-bit mutation of possibly
// shared elements goes through Access, which keeps concurrent edits of
// distinct bits in one element from losing updates.
//
// Basic usage:
//
//	import "github.com/sunjay/go-vecbit/vecbit"
//
//	// Build a vector of bits over uint8 storage, most significant bit first.
//	v := vecbit.Of[uint8, vecbit.Msb0[uint8]](1, 0, 1, 1)
//	v.Push(true)
//
//	// Point and bulk access through the slice view.
//	s := v.Slice()
//	fmt.Println(s.Get(0), s.OnesCount())
//
//	// Whole elements of the backing storage.
//	fmt.Printf("%08b\n", v.Elements())
//
// The Slice and Vec types are views and owners over the same representation;
// Span, Index, Tail, Domain and Access are the lower layer they are built on,
// exported for code that needs to manage element memory itself.
package vecbit

import "unsafe"

// Element is the constraint for sequence storage. The set is closed: exactly
// the fixed-width unsigned integers. Named types with these underlying types
// are deliberately excluded, because generic code dispatches on the concrete
// type.
type Element interface {
	uint8 | uint16 | uint32 | uint64
}

// BitsOf returns the width of T in bits.
func BitsOf[T Element]() uint8 {
	var dummy T
	return uint8(unsafe.Sizeof(dummy) * 8)
}

// Filled returns an element with every bit equal to bit.
func Filled[T Element](bit bool) T {
	if bit {
		var zero T
		return ^zero
	}
	return 0
}

// MaxBits returns the maximum number of live bits a single sequence may
// hold: one eighth of the address space. Constructors reject anything
// larger.
func MaxBits() int {
	return int(^uint(0) >> 3)
}

// MaxElements returns the maximum number of storage elements a single
// sequence may touch. The final element may be only partially live, so this
// is one more than MaxBits divides into.
func MaxElements[T Element]() int {
	return MaxBits()/int(BitsOf[T]()) + 1
}

// elementsFor returns the storage elements needed for bits live bits at
// head position zero.
func elementsFor[T Element](bits int) int {
	elts, _ := Index[T]{}.Span(bits)
	return elts
}
