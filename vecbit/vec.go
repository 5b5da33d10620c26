// Copyright 2026 go-vecbit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vecbit

import "fmt"

// Vec is a growable bit sequence that owns its storage. The first live bit
// is always at position zero of the first element; only sub-slicing
// produces views with interior heads. Every length change funnels through
// the span mutators, and growth rebases the descriptor when the storage
// moves.
//
// A Vec is not safe for concurrent use. Concurrent access works on Slice
// views of settled storage, never on a vector while it is being resized.
type Vec[T Element, O Order[T]] struct {
	span  Span[T]
	store []T
}

// New returns an empty vector with no storage.
func New[T Element, O Order[T]]() *Vec[T, O] {
	return &Vec[T, O]{}
}

// WithCapacity returns an empty vector with room for bits bits.
func WithCapacity[T Element, O Order[T]](bits int) *Vec[T, O] {
	v := New[T, O]()
	v.Reserve(bits)
	return v
}

// FromElements copies elts into a new vector spanning every bit of them.
func FromElements[T Element, O Order[T]](elts []T) (*Vec[T, O], error) {
	w := int(BitsOf[T]())
	if len(elts) > MaxBits()/w {
		return nil, &RangeError{Err: ErrTooManyElements, Value: uint64(len(elts)), Max: uint64(MaxBits() / w)}
	}
	v := New[T, O]()
	if len(elts) == 0 {
		return v, nil
	}
	v.store = make([]T, len(elts))
	copy(v.store, elts)
	sp, err := NewSpan(&v.store[0], Index[T]{}, len(elts)*w)
	if err != nil {
		return nil, err
	}
	v.span = sp
	return v, nil
}

// FromBools builds a vector with one bit per element of bits.
func FromBools[T Element, O Order[T]](bits []bool) *Vec[T, O] {
	v := WithCapacity[T, O](len(bits))
	for _, b := range bits {
		v.Push(b)
	}
	return v
}

// Of builds a vector from integer literals: zero is a clear bit, any other
// value a set bit.
//
//	v := vecbit.Of[uint8, vecbit.Msb0[uint8]](1, 0, 1, 1)
func Of[T Element, O Order[T]](bits ...int) *Vec[T, O] {
	v := WithCapacity[T, O](len(bits))
	for _, b := range bits {
		v.Push(b != 0)
	}
	return v
}

// Repeat builds a vector of n copies of bit.
func Repeat[T Element, O Order[T]](bit bool, n int) *Vec[T, O] {
	v := WithCapacity[T, O](n)
	v.Resize(n, bit)
	return v
}

// Len returns the number of live bits.
func (v *Vec[T, O]) Len() int {
	return v.span.Len()
}

// IsEmpty reports whether the vector holds no bits.
func (v *Vec[T, O]) IsEmpty() bool {
	return v.span.IsEmpty()
}

// Cap returns the number of bits v can hold without reallocating.
func (v *Vec[T, O]) Cap() int {
	c := len(v.store) * int(BitsOf[T]())
	if c > MaxBits() {
		return MaxBits()
	}
	return c
}

// Span returns a copy of the underlying span descriptor.
func (v *Vec[T, O]) Span() Span[T] {
	return v.span
}

// Slice returns the view of v's live bits. The view shares v's storage and
// is invalidated by any operation that changes v's length or capacity.
func (v *Vec[T, O]) Slice() *Slice[T, O] {
	return &Slice[T, O]{span: v.span}
}

// Get returns the bit at index i. It panics if i is out of range.
func (v *Vec[T, O]) Get(i int) bool {
	return v.Slice().Get(i)
}

// Set writes the bit at index i. It panics if i is out of range.
func (v *Vec[T, O]) Set(i int, bit bool) {
	v.Slice().Set(i, bit)
}

// Toggle flips the bit at index i. It panics if i is out of range.
func (v *Vec[T, O]) Toggle(i int) {
	v.Slice().Toggle(i)
}

// Equal reports whether both vectors hold the same bits in the same order.
func (v *Vec[T, O]) Equal(other *Vec[T, O]) bool {
	return v.Slice().Equal(other.Slice())
}

// Elements returns the touched storage elements, dead edge bits included.
// The slice aliases v's storage and is invalidated by growth.
func (v *Vec[T, O]) Elements() []T {
	return v.span.Slice()
}

// SetElements overwrites every touched storage element with elem, dead
// bits included.
func (v *Vec[T, O]) SetElements(elem T) {
	elts := v.span.Slice()
	for i := range elts {
		elts[i] = elem
	}
}

// Reserve grows the storage until at least additional more bits fit
// without another allocation. It panics if the resulting capacity would
// pass MaxBits.
func (v *Vec[T, O]) Reserve(additional int) {
	if additional < 0 {
		panic("vecbit: negative bit count")
	}
	need := v.Len() + additional
	if need > MaxBits() {
		panic(fmt.Sprintf("vecbit: capacity overflow: %d bits", need))
	}
	needElts := elementsFor[T](need)
	if needElts <= len(v.store) {
		return
	}
	newCap := max(needElts, 2*len(v.store))
	if maxE := MaxElements[T](); newCap > maxE {
		newCap = maxE
	}
	ns := make([]T, newCap)
	copy(ns, v.store)
	v.store = ns
	if v.span.base != nil {
		if err := v.span.Rebase(&v.store[0]); err != nil {
			panic(err)
		}
	}
}

// ShrinkToFit drops unused capacity.
func (v *Vec[T, O]) ShrinkToFit() {
	need := elementsFor[T](v.Len())
	if need == len(v.store) {
		return
	}
	if need == 0 {
		v.store = nil
		v.span = Span[T]{}
		return
	}
	ns := make([]T, need)
	copy(ns, v.store[:need])
	v.store = ns
	if err := v.span.Rebase(&v.store[0]); err != nil {
		panic(err)
	}
}

// Clone returns a deep copy of v with exact capacity.
func (v *Vec[T, O]) Clone() *Vec[T, O] {
	out := New[T, O]()
	if v.Len() == 0 {
		return out
	}
	out.store = make([]T, v.span.Elements())
	copy(out.store, v.store[:len(out.store)])
	sp, err := NewSpan(&out.store[0], Index[T]{}, v.Len())
	if err != nil {
		panic(err)
	}
	out.span = sp
	return out
}

// ensureBase points an empty span at the first storage element so the tail
// mutators have somewhere to grow.
func (v *Vec[T, O]) ensureBase() {
	if v.span.base == nil && len(v.store) > 0 {
		sp, err := NewSpan(&v.store[0], Index[T]{}, 0)
		if err != nil {
			panic(err)
		}
		v.span = sp
	}
}

// Push appends bit to the end of the vector.
func (v *Vec[T, O]) Push(bit bool) {
	n := v.Len()
	v.Reserve(1)
	v.ensureBase()
	if err := v.span.IncrTail(); err != nil {
		panic(err)
	}
	v.Slice().Set(n, bit)
}

// Pop removes and returns the last bit. The second result is false when
// the vector is empty.
func (v *Vec[T, O]) Pop() (bit, ok bool) {
	n := v.Len()
	if n == 0 {
		return false, false
	}
	bit = v.Slice().Get(n - 1)
	if err := v.span.DecrTail(); err != nil {
		panic(err)
	}
	return bit, true
}

// Truncate shortens the vector to n bits. It does nothing when the vector
// is already that short.
func (v *Vec[T, O]) Truncate(n int) {
	if n < 0 {
		panic("vecbit: negative length")
	}
	if n >= v.Len() {
		return
	}
	if err := v.span.SetLen(n); err != nil {
		panic(err)
	}
}

// Clear removes every bit, keeping the storage.
func (v *Vec[T, O]) Clear() {
	v.Truncate(0)
}

// Resize grows or shrinks the vector to n bits, filling any new positions
// with bit.
func (v *Vec[T, O]) Resize(n int, bit bool) {
	if n < 0 {
		panic("vecbit: negative length")
	}
	old := v.Len()
	if n <= old {
		v.Truncate(n)
		return
	}
	v.Reserve(n - old)
	v.ensureBase()
	if err := v.span.SetLen(n); err != nil {
		panic(err)
	}
	v.Slice().Range(old, n).Fill(bit)
}

// Extend appends bits in order.
func (v *Vec[T, O]) Extend(bits ...bool) {
	v.Reserve(len(bits))
	for _, b := range bits {
		v.Push(b)
	}
}

// Append moves every bit of other onto the end of v, leaving other empty.
func (v *Vec[T, O]) Append(other *Vec[T, O]) {
	n := other.Len()
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.Push(other.Get(i))
	}
	other.Clear()
}

// Insert places bit at index i, moving later bits up. It panics if i is
// past the end.
func (v *Vec[T, O]) Insert(i int, bit bool) {
	n := v.Len()
	if i < 0 || i > n {
		panic(fmt.Sprintf("vecbit: insert index %d out of range [0:%d]", i, n))
	}
	v.Push(bit)
	s := v.Slice()
	for k := n; k > i; k-- {
		s.Set(k, s.Get(k-1))
	}
	s.Set(i, bit)
}

// Remove deletes and returns the bit at index i, moving later bits down.
// It panics if i is out of range.
func (v *Vec[T, O]) Remove(i int) bool {
	n := v.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vecbit: remove index %d out of range [0:%d)", i, n))
	}
	s := v.Slice()
	bit := s.Get(i)
	for k := i; k < n-1; k++ {
		s.Set(k, s.Get(k+1))
	}
	if err := v.span.DecrTail(); err != nil {
		panic(err)
	}
	return bit
}

// SwapRemove deletes and returns the bit at index i by moving the last bit
// into its place. Constant time, does not preserve order. It panics if i
// is out of range.
func (v *Vec[T, O]) SwapRemove(i int) bool {
	n := v.Len()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("vecbit: remove index %d out of range [0:%d)", i, n))
	}
	s := v.Slice()
	bit := s.Get(i)
	s.Set(i, s.Get(n-1))
	if err := v.span.DecrTail(); err != nil {
		panic(err)
	}
	return bit
}

// Retain keeps only the bits for which keep returns true, preserving their
// order.
func (v *Vec[T, O]) Retain(keep func(i int, bit bool) bool) {
	s := v.Slice()
	n := v.Len()
	w := 0
	for r := 0; r < n; r++ {
		b := s.Get(r)
		if keep(r, b) {
			if w != r {
				s.Set(w, b)
			}
			w++
		}
	}
	v.Truncate(w)
}

// SplitOff removes the bits [at, Len) from v and returns them as a new
// vector. It panics if at is past the end.
func (v *Vec[T, O]) SplitOff(at int) *Vec[T, O] {
	n := v.Len()
	if at < 0 || at > n {
		panic(fmt.Sprintf("vecbit: split index %d out of range [0:%d]", at, n))
	}
	out := WithCapacity[T, O](n - at)
	for i := at; i < n; i++ {
		out.Push(v.Get(i))
	}
	v.Truncate(at)
	return out
}

// Drain removes the bits [i, j), closing the gap, and returns the removed
// bits in order. It panics if the range is out of bounds.
func (v *Vec[T, O]) Drain(i, j int) []bool {
	n := v.Len()
	if i < 0 || j < i || j > n {
		panic(fmt.Sprintf("vecbit: drain range [%d:%d) out of bounds [0:%d)", i, j, n))
	}
	out := make([]bool, j-i)
	s := v.Slice()
	for k := i; k < j; k++ {
		out[k-i] = s.Get(k)
	}
	gap := j - i
	for k := j; k < n; k++ {
		s.Set(k-gap, s.Get(k))
	}
	v.Truncate(n - gap)
	return out
}

// Splice replaces the bits [i, j) with repl, which may differ in length,
// and returns the removed bits in order.
func (v *Vec[T, O]) Splice(i, j int, repl []bool) []bool {
	out := v.Drain(i, j)
	for k, b := range repl {
		v.Insert(i+k, b)
	}
	return out
}
