package vecbit

import "unsafe"

// Access wraps a storage element that may be shared between views of
// neighboring bit sequences. Every single-bit mutation of a possibly
// shared element goes through an Access cell, so concurrent edits of
// distinct bits in the same element cannot lose updates.
//
// The wrapper has the same size and alignment as its element; Wrap and
// Span.Cells reinterpret element memory in place. Two backends implement
// the read-modify-write primitives: the default uses atomic operations,
// and the vecbit_noatomic build tag selects plain loads and stores for
// single-goroutine programs.
//
// On 8- and 16-bit storage the atomic backend operates on the aligned
// 32-bit word containing the cell. The untouched neighbor bits are carried
// through unchanged, so this is invisible to correct programs, but it is
// why base pointers must be aligned to the element size.
type Access[T Element] struct {
	cell T
}

// Wrap reinterprets elts as access cells. The result aliases elts.
func Wrap[T Element](elts []T) []Access[T] {
	if len(elts) == 0 {
		return nil
	}
	return unsafe.Slice((*Access[T])(unsafe.Pointer(&elts[0])), len(elts))
}

// Unwrap reinterprets cells as plain elements, discarding the access
// discipline. The result aliases cells. It is the caller's burden to hold
// the only live view of these elements: plain writes racing Access
// operations from another view are undefined behavior, and nothing checks
// for it. Bulk operations use this for the fully live body of a Domain,
// which a view owns exclusively.
func Unwrap[T Element](cells []Access[T]) []T {
	if len(cells) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&cells[0])), len(cells))
}

// Bit reports whether any bit selected by mask is set.
func (a *Access[T]) Bit(mask T) bool {
	return a.Load()&mask != 0
}

// Set writes value to every bit selected by mask.
func (a *Access[T]) Set(mask T, value bool) {
	if value {
		a.SetBits(mask)
	} else {
		a.ClearBits(mask)
	}
}
