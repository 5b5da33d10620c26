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

import "unsafe"

// Span locates a bit sequence inside element memory: a base pointer, the
// number of storage elements the sequence touches, and the live bit
// boundaries inside the first and last of them. A Span never owns the
// memory it describes; the owner is responsible for keeping the elements
// alive and for calling Rebase when it moves them.
//
// The zero Span is the canonical empty sequence. A span shrunk to zero
// length keeps its base pointer so the owner can grow it again; IsEmpty is
// the semantic emptiness test, not comparison with the zero value.
type Span[T Element] struct {
	base *T
	elts int
	head Index[T]
	tail Tail[T]
}

// NewSpan describes the bits live bits starting at position head of the
// element at base. The base must be aligned to the element size; on 32-bit
// platforms this is also what makes 64-bit elements safe for atomic access.
// A zero length keeps the base and head for later growth; a nil base is
// legal only at zero length.
func NewSpan[T Element](base *T, head Index[T], bits int) (Span[T], error) {
	if base == nil {
		if bits != 0 {
			return Span[T]{}, ErrNilBase
		}
		return Span[T]{head: head, tail: Tail[T]{v: head.v}}, nil
	}
	if uintptr(unsafe.Pointer(base))%unsafe.Sizeof(*base) != 0 {
		return Span[T]{}, ErrMisaligned
	}
	if bits > MaxBits() {
		return Span[T]{}, &RangeError{Err: ErrTooManyBits, Value: uint64(bits), Max: uint64(MaxBits())}
	}
	elts, tail := head.Span(bits)
	return Span[T]{base: base, elts: elts, head: head, tail: tail}, nil
}

// SpanOf describes every bit of elts, head 0 through a full tail.
func SpanOf[T Element](elts []T) (Span[T], error) {
	if len(elts) == 0 {
		return Span[T]{}, nil
	}
	w := int(BitsOf[T]())
	if len(elts) > MaxBits()/w {
		return Span[T]{}, &RangeError{Err: ErrTooManyElements, Value: uint64(len(elts)), Max: uint64(MaxBits() / w)}
	}
	return NewSpan(&elts[0], Index[T]{}, len(elts)*w)
}

// EmptySpan returns the canonical empty span.
func EmptySpan[T Element]() Span[T] {
	return Span[T]{}
}

// Base returns the first touched storage element, or nil for the canonical
// empty span.
func (s Span[T]) Base() *T {
	return s.base
}

// Head returns the position of the first live bit inside the first touched
// element.
func (s Span[T]) Head() Index[T] {
	return s.head
}

// Tail returns the position one past the last live bit inside the last
// touched element.
func (s Span[T]) Tail() Tail[T] {
	return s.tail
}

// Elements returns the number of storage elements the span touches,
// including partially live edges.
func (s Span[T]) Elements() int {
	return s.elts
}

// Len returns the number of live bits.
func (s Span[T]) Len() int {
	if s.elts == 0 {
		return 0
	}
	return (s.elts-1)*int(BitsOf[T]()) + int(s.tail.v) - int(s.head.v)
}

// IsEmpty reports whether the span holds no live bits.
func (s Span[T]) IsEmpty() bool {
	return s.elts == 0
}

// Slice returns every touched storage element, including the partially
// live edges, as a plain element slice. Writing through it bypasses the
// Access discipline; callers must hold the only live view of the edge
// elements.
func (s Span[T]) Slice() []T {
	if s.elts == 0 {
		return nil
	}
	return unsafe.Slice(s.base, s.elts)
}

// Cells returns the same elements as Slice, typed through the Access
// wrapper for shared-element mutation.
func (s Span[T]) Cells() []Access[T] {
	if s.elts == 0 {
		return nil
	}
	return unsafe.Slice((*Access[T])(unsafe.Pointer(s.base)), s.elts)
}

// SetLen resizes the span in place to bits live bits, recomputing the
// element count and tail from the unchanged head. Shrinking to zero keeps
// the base for later growth.
func (s *Span[T]) SetLen(bits int) error {
	if bits < 0 {
		panic("vecbit: negative bit count")
	}
	if bits != 0 && s.base == nil {
		return ErrNilBase
	}
	if bits > MaxBits() {
		return &RangeError{Err: ErrTooManyBits, Value: uint64(bits), Max: uint64(MaxBits())}
	}
	s.elts, s.tail = s.head.Span(bits)
	return nil
}

// IncrTail extends the span by one bit. The caller must ensure the
// underlying storage covers the possibly new final element.
func (s *Span[T]) IncrTail() error {
	if s.base == nil {
		return ErrNilBase
	}
	return s.SetLen(s.Len() + 1)
}

// DecrTail shrinks the span by one bit.
func (s *Span[T]) DecrTail() error {
	if s.IsEmpty() {
		return ErrEmpty
	}
	return s.SetLen(s.Len() - 1)
}

// Rebase points the span at moved storage. The head, tail, and length are
// unchanged; only the base moves. A nil base is accepted only for an empty
// span.
func (s *Span[T]) Rebase(base *T) error {
	if base == nil {
		if s.elts != 0 {
			return ErrNilBase
		}
		s.base = nil
		return nil
	}
	if uintptr(unsafe.Pointer(base))%unsafe.Sizeof(*base) != 0 {
		return ErrMisaligned
	}
	s.base = base
	return nil
}
