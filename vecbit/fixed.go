package vecbit

// Fixed is a bit sequence frozen at its construction length. Bit values
// stay mutable through Slice, but nothing can grow or shrink the storage,
// so views handed out from a Fixed are never invalidated.
type Fixed[T Element, O Order[T]] struct {
	span  Span[T]
	store []T
}

// NewFixed copies the live bits of v into a frozen sequence backed by
// exact-size storage.
func NewFixed[T Element, O Order[T]](v *Vec[T, O]) *Fixed[T, O] {
	return v.Clone().IntoFixed()
}

// IntoFixed freezes v into a Fixed, moving the storage without copying
// bits. v is left empty.
func (v *Vec[T, O]) IntoFixed() *Fixed[T, O] {
	v.ShrinkToFit()
	f := &Fixed[T, O]{span: v.span, store: v.store}
	v.span = Span[T]{}
	v.store = nil
	return f
}

// IntoVec thaws f back into a growable vector, moving the storage. f must
// not be used afterwards.
func (f *Fixed[T, O]) IntoVec() *Vec[T, O] {
	v := &Vec[T, O]{span: f.span, store: f.store}
	f.span = Span[T]{}
	f.store = nil
	return v
}

// Len returns the number of bits.
func (f *Fixed[T, O]) Len() int {
	return f.span.Len()
}

// IsEmpty reports whether f holds no bits.
func (f *Fixed[T, O]) IsEmpty() bool {
	return f.span.IsEmpty()
}

// Slice returns the mutable view of f's bits.
func (f *Fixed[T, O]) Slice() *Slice[T, O] {
	return &Slice[T, O]{span: f.span}
}

// Get returns the bit at index i. It panics if i is out of range.
func (f *Fixed[T, O]) Get(i int) bool {
	return f.Slice().Get(i)
}

// Set writes the bit at index i. It panics if i is out of range.
func (f *Fixed[T, O]) Set(i int, bit bool) {
	f.Slice().Set(i, bit)
}

// Elements returns the storage elements. The slice aliases f's storage.
func (f *Fixed[T, O]) Elements() []T {
	return f.span.Slice()
}

// Equal reports whether both sequences hold the same bits in the same
// order.
func (f *Fixed[T, O]) Equal(other *Fixed[T, O]) bool {
	return f.Slice().Equal(other.Slice())
}

// Clone returns a deep copy.
func (f *Fixed[T, O]) Clone() *Fixed[T, O] {
	out := &Fixed[T, O]{}
	if f.Len() == 0 {
		return out
	}
	out.store = make([]T, f.span.Elements())
	copy(out.store, f.store[:len(out.store)])
	sp, err := NewSpan(&out.store[0], Index[T]{}, f.Len())
	if err != nil {
		panic(err)
	}
	out.span = sp
	return out
}
