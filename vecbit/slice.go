package vecbit

import (
	"fmt"
	"unsafe"
)

// Slice is a borrowed, fixed-length view of a bit sequence. The type
// parameter O fixes the bit ordering; views with different orderings over
// the same storage see different sequences and cannot be mixed.
//
// A Slice never owns storage. Point operations route every touch through
// Access, so views over overlapping storage may run concurrently as long
// as their live bits are disjoint. Bulk operations write the fully live
// body elements as whole units and are safe only while no other goroutine
// touches the view's storage.
//
// The zero Slice is an empty view.
type Slice[T Element, O Order[T]] struct {
	span Span[T]
}

// SliceOf views every bit of elts.
func SliceOf[T Element, O Order[T]](elts []T) (*Slice[T, O], error) {
	sp, err := SpanOf(elts)
	if err != nil {
		return nil, err
	}
	return &Slice[T, O]{span: sp}, nil
}

// SliceFromSpan views the bits a span describes.
func SliceFromSpan[T Element, O Order[T]](sp Span[T]) *Slice[T, O] {
	return &Slice[T, O]{span: sp}
}

// Span returns a copy of the underlying span descriptor.
func (s *Slice[T, O]) Span() Span[T] {
	return s.span
}

// Len returns the number of bits in the view.
func (s *Slice[T, O]) Len() int {
	return s.span.Len()
}

// IsEmpty reports whether the view holds no bits.
func (s *Slice[T, O]) IsEmpty() bool {
	return s.span.IsEmpty()
}

// locate maps a logical bit index to its cell and in-element mask.
func (s *Slice[T, O]) locate(i int) (*Access[T], T) {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("vecbit: bit index %d out of range [0:%d)", i, s.Len()))
	}
	w := int(BitsOf[T]())
	pos := int(s.span.head.v) + i
	cells := s.span.Cells()
	var o O
	return &cells[pos/w], o.Mask(Index[T]{v: uint8(pos % w)})
}

// Get returns the bit at index i. It panics if i is out of range.
func (s *Slice[T, O]) Get(i int) bool {
	cell, mask := s.locate(i)
	return cell.Bit(mask)
}

// Set writes the bit at index i. It panics if i is out of range.
func (s *Slice[T, O]) Set(i int, bit bool) {
	cell, mask := s.locate(i)
	cell.Set(mask, bit)
}

// Toggle flips the bit at index i. It panics if i is out of range.
func (s *Slice[T, O]) Toggle(i int) {
	cell, mask := s.locate(i)
	cell.InvertBits(mask)
}

// Range returns the view of bits [i, j). The result aliases s: writes
// through either view are visible in the other, and a shared edge element
// between them stays safe because point operations go through Access.
// It panics if the range is out of bounds.
func (s *Slice[T, O]) Range(i, j int) *Slice[T, O] {
	if i < 0 || j < i || j > s.Len() {
		panic(fmt.Sprintf("vecbit: range [%d:%d) out of bounds [0:%d)", i, j, s.Len()))
	}
	if i == j {
		return &Slice[T, O]{}
	}
	w := int(BitsOf[T]())
	pos := int(s.span.head.v) + i
	base := (*T)(unsafe.Add(unsafe.Pointer(s.span.base), uintptr(pos/w)*unsafe.Sizeof(*s.span.base)))
	sp, err := NewSpan(base, Index[T]{v: uint8(pos % w)}, j-i)
	if err != nil {
		panic(err)
	}
	return &Slice[T, O]{span: sp}
}

// ForEach calls fn for each bit in index order until fn returns false.
func (s *Slice[T, O]) ForEach(fn func(i int, bit bool) bool) {
	n := s.Len()
	for i := 0; i < n; i++ {
		if !fn(i, s.Get(i)) {
			return
		}
	}
}

// Uint reads nbits bits starting at index i as an unsigned integer, first
// bit most significant. nbits must be at most 64. It panics if the field
// lies outside the view.
func (s *Slice[T, O]) Uint(i, nbits int) uint64 {
	if nbits < 0 || nbits > 64 {
		panic(fmt.Sprintf("vecbit: field width %d out of range [0:64]", nbits))
	}
	if i < 0 || i+nbits > s.Len() {
		panic(fmt.Sprintf("vecbit: field [%d:%d) out of bounds [0:%d)", i, i+nbits, s.Len()))
	}
	var v uint64
	for k := 0; k < nbits; k++ {
		v <<= 1
		if s.Get(i + k) {
			v |= 1
		}
	}
	return v
}

// SetUint writes the low nbits bits of v starting at index i, first bit
// most significant. nbits must be at most 64. It panics if the field lies
// outside the view.
func (s *Slice[T, O]) SetUint(i, nbits int, v uint64) {
	if nbits < 0 || nbits > 64 {
		panic(fmt.Sprintf("vecbit: field width %d out of range [0:64]", nbits))
	}
	if i < 0 || i+nbits > s.Len() {
		panic(fmt.Sprintf("vecbit: field [%d:%d) out of bounds [0:%d)", i, i+nbits, s.Len()))
	}
	for k := nbits - 1; k >= 0; k-- {
		s.Set(i+k, v&1 == 1)
		v >>= 1
	}
}
