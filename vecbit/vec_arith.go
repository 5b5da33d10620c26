package vecbit

// Arithmetic treats a vector as an unsigned big-endian integer: index zero
// is the most significant bit, the last index the least significant.
// Addition may grow the vector by one bit at the front; subtraction and
// negation wrap modulo 2^Len.

// Not flips every live bit in place.
func (v *Vec[T, O]) Not() {
	v.Slice().Invert()
}

// Neg replaces v with its two's complement negation, modulo 2^Len.
func (v *Vec[T, O]) Neg() {
	if v.IsEmpty() || v.Slice().None() {
		return
	}
	s := v.Slice()
	s.Invert()
	for i := v.Len() - 1; i >= 0; i-- {
		if !s.Get(i) {
			s.Set(i, true)
			return
		}
		s.Set(i, false)
	}
}

// Add sums src into v. The shorter operand is zero-extended at the front,
// and a final carry pushes one extra bit onto the front of the result.
func (v *Vec[T, O]) Add(src *Vec[T, O]) {
	n, m := v.Len(), src.Len()
	ln := max(n, m)
	if ln == 0 {
		return
	}
	out := make([]bool, ln)
	carry := false
	for i := 0; i < ln; i++ {
		var a, b bool
		if i < n {
			a = v.Get(n - 1 - i)
		}
		if i < m {
			b = src.Get(m - 1 - i)
		}
		out[ln-1-i] = a != b != carry
		carry = (a && b) || (a && carry) || (b && carry)
	}
	v.Clear()
	v.Reserve(ln + 1)
	if carry {
		v.Push(true)
	}
	for _, b := range out {
		v.Push(b)
	}
}

// Sub subtracts src from v modulo 2^max(Len), zero-extending the shorter
// operand at the front. The result keeps max(Len) bits.
func (v *Vec[T, O]) Sub(src *Vec[T, O]) {
	n, m := v.Len(), src.Len()
	ln := max(n, m)
	if ln == 0 {
		return
	}
	out := make([]bool, ln)
	borrow := false
	for i := 0; i < ln; i++ {
		var a, b bool
		if i < n {
			a = v.Get(n - 1 - i)
		}
		if i < m {
			b = src.Get(m - 1 - i)
		}
		out[ln-1-i] = a != b != borrow
		borrow = (!a && b) || (!a && borrow) || (b && borrow)
	}
	v.Clear()
	v.Reserve(ln)
	for _, b := range out {
		v.Push(b)
	}
}

// ShiftLeft moves every bit shamt places toward index zero, dropping the
// first shamt bits. The length shrinks by shamt.
func (v *Vec[T, O]) ShiftLeft(shamt int) {
	if shamt < 0 {
		panic("vecbit: negative shift")
	}
	n := v.Len()
	if shamt == 0 || n == 0 {
		return
	}
	if shamt >= n {
		v.Clear()
		return
	}
	w := int(BitsOf[T]())
	if shamt%w == 0 {
		// Element-aligned shifts move whole elements.
		elts := v.Elements()
		copy(elts, elts[shamt/w:])
		v.Truncate(n - shamt)
		return
	}
	s := v.Slice()
	for i := shamt; i < n; i++ {
		s.Set(i-shamt, s.Get(i))
	}
	v.Truncate(n - shamt)
}

// ShiftRight moves every bit shamt places away from index zero, filling
// the front with zeros. The length grows by shamt.
func (v *Vec[T, O]) ShiftRight(shamt int) {
	if shamt < 0 {
		panic("vecbit: negative shift")
	}
	n := v.Len()
	if shamt == 0 {
		return
	}
	if n == 0 {
		v.Resize(shamt, false)
		return
	}
	w := int(BitsOf[T]())
	if shamt%w == 0 {
		ke := shamt / w
		oldElts := v.span.Elements()
		v.Reserve(shamt)
		v.ensureBase()
		if err := v.span.SetLen(n + shamt); err != nil {
			panic(err)
		}
		elts := v.Elements()
		copy(elts[ke:], elts[:oldElts])
		for i := 0; i < ke; i++ {
			elts[i] = 0
		}
		return
	}
	v.Resize(n+shamt, false)
	s := v.Slice()
	for i := n - 1; i >= 0; i-- {
		s.Set(i+shamt, s.Get(i))
	}
	s.Range(0, shamt).Fill(false)
}

// And intersects v with src elementwise, truncating v to the shorter
// length first.
func (v *Vec[T, O]) And(src *Vec[T, O]) {
	n := min(v.Len(), src.Len())
	v.Truncate(n)
	v.Slice().And(src.Slice().Range(0, n))
}

// Or unions src into v, truncating v to the shorter length first.
func (v *Vec[T, O]) Or(src *Vec[T, O]) {
	n := min(v.Len(), src.Len())
	v.Truncate(n)
	v.Slice().Or(src.Slice().Range(0, n))
}

// Xor combines src into v by symmetric difference, truncating v to the
// shorter length first.
func (v *Vec[T, O]) Xor(src *Vec[T, O]) {
	n := min(v.Len(), src.Len())
	v.Truncate(n)
	v.Slice().Xor(src.Slice().Range(0, n))
}
