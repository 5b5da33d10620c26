//go:build vecbit_noatomic

package vecbit

// Plain-cell backend for single-goroutine programs, selected by the
// vecbit_noatomic build tag. The Access interface is unchanged; the
// operations are ordinary loads and stores with no synchronization cost,
// and no cross-goroutine guarantee of any kind.

// SetBits sets every bit selected by mask.
func (a *Access[T]) SetBits(mask T) {
	a.cell |= mask
}

// ClearBits clears every bit selected by mask. Note the mask names the
// bits to clear, not the bits to keep.
func (a *Access[T]) ClearBits(mask T) {
	a.cell &^= mask
}

// InvertBits flips every bit selected by mask.
func (a *Access[T]) InvertBits(mask T) {
	a.cell ^= mask
}

// Load returns the whole element.
func (a *Access[T]) Load() T {
	return a.cell
}

// Store overwrites the whole element.
func (a *Access[T]) Store(v T) {
	a.cell = v
}
