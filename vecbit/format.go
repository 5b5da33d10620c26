package vecbit

import (
	"fmt"
	"strings"
)

// String renders the bits as '0' and '1' runes grouped by storage element,
// most significant position first within each group:
//
//	[01101000, 01101001]
//
// A view that starts mid-element renders a short first group, so the
// grouping always reflects element boundaries in memory.
func (s *Slice[T, O]) String() string {
	n := s.Len()
	var b strings.Builder
	b.Grow(n + n/4 + 2)
	b.WriteByte('[')
	head := int(s.span.head.Pos())
	w := int(BitsOf[T]())
	for i := 0; i < n; i++ {
		if i > 0 && (head+i)%w == 0 {
			b.WriteString(", ")
		}
		if s.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (v *Vec[T, O]) String() string {
	return v.Slice().String()
}

func (f *Fixed[T, O]) String() string {
	return f.Slice().String()
}

// GoString renders v as a constructor expression.
func (v *Vec[T, O]) GoString() string {
	var o O
	w := BitsOf[T]()
	var b strings.Builder
	fmt.Fprintf(&b, "vecbit.Of[uint%d, vecbit.%s[uint%d]](", w, o.Name(), w)
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if v.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(')')
	return b.String()
}

// Parse builds a vector from a string of '0' and '1' characters. Brackets,
// commas, underscores, and whitespace are skipped, so the output of String
// round-trips. Any other character fails with ErrParse.
func Parse[T Element, O Order[T]](s string) (*Vec[T, O], error) {
	v := New[T, O]()
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '0':
			v.Push(false)
		case '1':
			v.Push(true)
		case '[', ']', ',', '_', ' ', '\t', '\n', '\r':
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrParse, c, i)
		}
	}
	return v, nil
}

// MustParse is Parse that panics on malformed input. Intended for literals
// in tests and examples.
func MustParse[T Element, O Order[T]](s string) *Vec[T, O] {
	v, err := Parse[T, O](s)
	if err != nil {
		panic(err)
	}
	return v
}
