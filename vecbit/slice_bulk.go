package vecbit

import "fmt"

// Bulk operations dispatch on the Domain classification: the fully live
// body elements are processed as whole units, and only the partially live
// edge elements go through masked Access operations. Per-bit work is
// bounded by the two edges no matter how long the sequence is.

// countElements counts set bits over whole elements.
func countElements[T Element](elts []T) int {
	n := 0
	if hasFastPopcount {
		// Four independent accumulators keep the hardware popcount busy.
		var a, b, c, d int
		i := 0
		for ; i+4 <= len(elts); i += 4 {
			a += PopCount(elts[i])
			b += PopCount(elts[i+1])
			c += PopCount(elts[i+2])
			d += PopCount(elts[i+3])
		}
		n = a + b + c + d
		for ; i < len(elts); i++ {
			n += PopCount(elts[i])
		}
		return n
	}
	for _, e := range elts {
		n += PopCount(e)
	}
	return n
}

// OnesCount returns the number of set bits in the view.
func (s *Slice[T, O]) OnesCount() int {
	d := s.span.Domain()
	n := 0
	d.Parts(func(c *Access[T], from, to uint8) {
		n += PopCount(c.Load() & MaskRange[T, O](from, to))
	}, func(cells []Access[T]) {
		n += countElements(Unwrap(cells))
	})
	return n
}

// ZerosCount returns the number of clear bits in the view.
func (s *Slice[T, O]) ZerosCount() int {
	return s.Len() - s.OnesCount()
}

// Fill writes bit to every position in the view.
func (s *Slice[T, O]) Fill(bit bool) {
	d := s.span.Domain()
	full := Filled[T](bit)
	d.Parts(func(c *Access[T], from, to uint8) {
		m := MaskRange[T, O](from, to)
		if bit {
			c.SetBits(m)
		} else {
			c.ClearBits(m)
		}
	}, func(cells []Access[T]) {
		body := Unwrap(cells)
		for i := range body {
			body[i] = full
		}
	})
}

// Invert flips every bit in the view.
func (s *Slice[T, O]) Invert() {
	d := s.span.Domain()
	d.Parts(func(c *Access[T], from, to uint8) {
		c.InvertBits(MaskRange[T, O](from, to))
	}, func(cells []Access[T]) {
		body := Unwrap(cells)
		for i := range body {
			body[i] = ^body[i]
		}
	})
}

// Any reports whether at least one bit is set.
func (s *Slice[T, O]) Any() bool {
	d := s.span.Domain()
	if d.HeadCell != nil {
		end := BitsOf[T]()
		if d.Kind == DomainMinor {
			end = d.Tail.v
		}
		if d.HeadCell.Load()&MaskRange[T, O](d.Head.v, end) != 0 {
			return true
		}
	}
	for _, e := range Unwrap(d.Body) {
		if e != 0 {
			return true
		}
	}
	if d.TailCell != nil && d.TailCell.Load()&MaskRange[T, O](0, d.Tail.v) != 0 {
		return true
	}
	return false
}

// All reports whether every bit is set. An empty view is vacuously all set.
func (s *Slice[T, O]) All() bool {
	d := s.span.Domain()
	if d.HeadCell != nil {
		end := BitsOf[T]()
		if d.Kind == DomainMinor {
			end = d.Tail.v
		}
		m := MaskRange[T, O](d.Head.v, end)
		if d.HeadCell.Load()&m != m {
			return false
		}
	}
	full := Filled[T](true)
	for _, e := range Unwrap(d.Body) {
		if e != full {
			return false
		}
	}
	if d.TailCell != nil {
		m := MaskRange[T, O](0, d.Tail.v)
		if d.TailCell.Load()&m != m {
			return false
		}
	}
	return true
}

// None reports whether no bit is set.
func (s *Slice[T, O]) None() bool {
	return !s.Any()
}

// Equal reports whether both views hold the same bits in the same order.
func (s *Slice[T, O]) Equal(other *Slice[T, O]) bool {
	if s.Len() != other.Len() {
		return false
	}
	n := s.Len()
	if n == 0 {
		return true
	}
	if s.span.head.v != other.span.head.v {
		for i := 0; i < n; i++ {
			if s.Get(i) != other.Get(i) {
				return false
			}
		}
		return true
	}
	// Equal heads and lengths mean identical element geometry, so the
	// elements can be compared directly with the dead edge bits masked off.
	a, b := s.span.Slice(), other.span.Slice()
	if len(a) == 1 {
		m := MaskRange[T, O](s.span.head.v, s.span.tail.v)
		return a[0]&m == b[0]&m
	}
	headMask := MaskRange[T, O](s.span.head.v, BitsOf[T]())
	if a[0]&headMask != b[0]&headMask {
		return false
	}
	for i := 1; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	tailMask := MaskRange[T, O](0, s.span.tail.v)
	return a[len(a)-1]&tailMask == b[len(b)-1]&tailMask
}

// Compare orders two views lexicographically by bit, with a set bit sorting
// after a clear one and a shorter view that is a prefix sorting first. It
// returns -1, 0, or 1.
func (s *Slice[T, O]) Compare(other *Slice[T, O]) int {
	n := min(s.Len(), other.Len())
	for i := 0; i < n; i++ {
		a, b := s.Get(i), other.Get(i)
		if a != b {
			if a {
				return 1
			}
			return -1
		}
	}
	switch {
	case s.Len() < other.Len():
		return -1
	case s.Len() > other.Len():
		return 1
	default:
		return 0
	}
}

// CopyFrom copies src's bits into s. The lengths must match; it panics
// otherwise.
func (s *Slice[T, O]) CopyFrom(src *Slice[T, O]) {
	if s.Len() != src.Len() {
		panic(fmt.Sprintf("vecbit: copy length mismatch: %d != %d", s.Len(), src.Len()))
	}
	n := s.Len()
	if n == 0 {
		return
	}
	if s.span.head.v != src.span.head.v {
		for i := 0; i < n; i++ {
			s.Set(i, src.Get(i))
		}
		return
	}
	d := s.span.Domain()
	a, b := s.span.Slice(), src.span.Slice()
	w := int(BitsOf[T]())
	switch d.Kind {
	case DomainSpanning:
		copy(a, b)
	case DomainMinor:
		for i := 0; i < n; i++ {
			s.Set(i, src.Get(i))
		}
	case DomainPartialHead:
		hb := w - int(s.span.head.v)
		for i := 0; i < hb; i++ {
			s.Set(i, src.Get(i))
		}
		copy(a[1:], b[1:])
	case DomainPartialTail:
		tb := int(s.span.tail.v)
		copy(a[:len(a)-1], b[:len(b)-1])
		for i := n - tb; i < n; i++ {
			s.Set(i, src.Get(i))
		}
	case DomainMajor:
		hb := w - int(s.span.head.v)
		tb := int(s.span.tail.v)
		for i := 0; i < hb; i++ {
			s.Set(i, src.Get(i))
		}
		copy(a[1:len(a)-1], b[1:len(b)-1])
		for i := n - tb; i < n; i++ {
			s.Set(i, src.Get(i))
		}
	}
}

// combine applies elem to whole interior elements and bit to edge bits,
// pairwise from src into s. The lengths must match; it panics otherwise.
func (s *Slice[T, O]) combine(src *Slice[T, O], elem func(a, b T) T, bit func(a, b bool) bool) {
	if s.Len() != src.Len() {
		panic(fmt.Sprintf("vecbit: combine length mismatch: %d != %d", s.Len(), src.Len()))
	}
	n := s.Len()
	if n == 0 {
		return
	}
	edge := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			s.Set(i, bit(s.Get(i), src.Get(i)))
		}
	}
	if s.span.head.v != src.span.head.v {
		edge(0, n)
		return
	}
	d := s.span.Domain()
	a, b := s.span.Slice(), src.span.Slice()
	w := int(BitsOf[T]())
	switch d.Kind {
	case DomainSpanning:
		for i := range a {
			a[i] = elem(a[i], b[i])
		}
	case DomainMinor:
		edge(0, n)
	case DomainPartialHead:
		hb := w - int(s.span.head.v)
		edge(0, hb)
		for i := 1; i < len(a); i++ {
			a[i] = elem(a[i], b[i])
		}
	case DomainPartialTail:
		tb := int(s.span.tail.v)
		for i := 0; i < len(a)-1; i++ {
			a[i] = elem(a[i], b[i])
		}
		edge(n-tb, n)
	case DomainMajor:
		hb := w - int(s.span.head.v)
		tb := int(s.span.tail.v)
		edge(0, hb)
		for i := 1; i < len(a)-1; i++ {
			a[i] = elem(a[i], b[i])
		}
		edge(n-tb, n)
	}
}

// And intersects s with src bit by bit. The lengths must match.
func (s *Slice[T, O]) And(src *Slice[T, O]) {
	s.combine(src,
		func(a, b T) T { return a & b },
		func(a, b bool) bool { return a && b })
}

// Or unions s with src bit by bit. The lengths must match.
func (s *Slice[T, O]) Or(src *Slice[T, O]) {
	s.combine(src,
		func(a, b T) T { return a | b },
		func(a, b bool) bool { return a || b })
}

// Xor symmetric-differences s with src bit by bit. The lengths must match.
func (s *Slice[T, O]) Xor(src *Slice[T, O]) {
	s.combine(src,
		func(a, b T) T { return a ^ b },
		func(a, b bool) bool { return a != b })
}
