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

//go:build !vecbit_noatomic

package vecbit

import (
	"sync/atomic"
	"unsafe"
)

// Atomic read-modify-write backend, selected by default.
//
// sync/atomic has no 8- or 16-bit operations, so narrow elements are
// updated through the aligned 32-bit word containing them, with the mask
// shifted into the element's position. Or and And leave the neighbor bits
// untouched within a single hardware operation, and the compare-and-swap
// loops only succeed when the whole word is unchanged, so concurrent
// updates to neighboring memory are never lost.
//
// The race detector sees a word-sized atomic op as touching all four
// bytes. Mixing Access ops on a narrow edge element with plain writes to
// body elements in the same word is bit-correct but can be reported under
// -race; use 32- or 64-bit elements where that matters.

// hostBigEndian reports the byte order of the host, which decides where a
// narrow element's value bits sit inside its containing 32-bit word.
var hostBigEndian = func() bool {
	var x uint16 = 1
	return *(*byte)(unsafe.Pointer(&x)) == 0
}()

// containing32 returns the aligned 32-bit word holding the size-byte value
// at p, and the left shift that moves that value into its position within
// the word.
func containing32(p unsafe.Pointer, size uintptr) (*uint32, uint) {
	off := uintptr(p) & 3
	word := (*uint32)(unsafe.Add(p, -int(off)))
	if hostBigEndian {
		return word, uint(8 * (4 - size - off))
	}
	return word, uint(8 * off)
}

// SetBits sets every bit selected by mask as one atomic update. Concurrent
// Access operations on other bits of the same element are never lost.
func (a *Access[T]) SetBits(mask T) {
	switch p := any(&a.cell).(type) {
	case *uint8:
		word, shift := containing32(unsafe.Pointer(p), 1)
		atomic.OrUint32(word, uint32(mask)<<shift)
	case *uint16:
		word, shift := containing32(unsafe.Pointer(p), 2)
		atomic.OrUint32(word, uint32(mask)<<shift)
	case *uint32:
		atomic.OrUint32(p, uint32(mask))
	case *uint64:
		atomic.OrUint64(p, uint64(mask))
	}
}

// ClearBits clears every bit selected by mask as one atomic update. Note
// the mask names the bits to clear, not the bits to keep.
func (a *Access[T]) ClearBits(mask T) {
	switch p := any(&a.cell).(type) {
	case *uint8:
		word, shift := containing32(unsafe.Pointer(p), 1)
		atomic.AndUint32(word, ^(uint32(mask) << shift))
	case *uint16:
		word, shift := containing32(unsafe.Pointer(p), 2)
		atomic.AndUint32(word, ^(uint32(mask) << shift))
	case *uint32:
		atomic.AndUint32(p, ^uint32(mask))
	case *uint64:
		atomic.AndUint64(p, ^uint64(mask))
	}
}

// InvertBits flips every bit selected by mask as one atomic update. There
// is no atomic xor primitive, so all widths use a compare-and-swap loop.
func (a *Access[T]) InvertBits(mask T) {
	switch p := any(&a.cell).(type) {
	case *uint8:
		word, shift := containing32(unsafe.Pointer(p), 1)
		casXor32(word, uint32(mask)<<shift)
	case *uint16:
		word, shift := containing32(unsafe.Pointer(p), 2)
		casXor32(word, uint32(mask)<<shift)
	case *uint32:
		casXor32(p, uint32(mask))
	case *uint64:
		for {
			old := atomic.LoadUint64(p)
			if atomic.CompareAndSwapUint64(p, old, old^uint64(mask)) {
				return
			}
		}
	}
}

func casXor32(word *uint32, mask uint32) {
	for {
		old := atomic.LoadUint32(word)
		if atomic.CompareAndSwapUint32(word, old, old^mask) {
			return
		}
	}
}

// Load returns the whole element.
func (a *Access[T]) Load() T {
	switch p := any(&a.cell).(type) {
	case *uint8:
		word, shift := containing32(unsafe.Pointer(p), 1)
		return T(atomic.LoadUint32(word) >> shift)
	case *uint16:
		word, shift := containing32(unsafe.Pointer(p), 2)
		return T(atomic.LoadUint32(word) >> shift)
	case *uint32:
		return T(atomic.LoadUint32(p))
	case *uint64:
		return T(atomic.LoadUint64(p))
	default:
		return 0
	}
}

// Store overwrites the whole element. It replaces bits that other views may
// own, so the caller must hold the only live view of the element; the write
// itself is still untorn.
func (a *Access[T]) Store(v T) {
	switch p := any(&a.cell).(type) {
	case *uint8:
		word, shift := containing32(unsafe.Pointer(p), 1)
		storeNarrow(word, uint32(v), uint32(0xFF), shift)
	case *uint16:
		word, shift := containing32(unsafe.Pointer(p), 2)
		storeNarrow(word, uint32(v), uint32(0xFFFF), shift)
	case *uint32:
		atomic.StoreUint32(p, uint32(v))
	case *uint64:
		atomic.StoreUint64(p, uint64(v))
	}
}

func storeNarrow(word *uint32, v, elemMask uint32, shift uint) {
	m := elemMask << shift
	nv := (v & elemMask) << shift
	for {
		old := atomic.LoadUint32(word)
		if atomic.CompareAndSwapUint32(word, old, old&^m|nv) {
			return
		}
	}
}
