package vecbit

import "github.com/bits-and-blooms/bitset"

// BitSetVec is the instantiation that shares bits-and-blooms/bitset's
// memory layout: 64-bit words filled least significant bit first. Only
// this instantiation converts without bit reshuffling.
type BitSetVec = Vec[uint64, Lsb0[uint64]]

// FromBitSet copies bs into a vector with the same contents and length.
func FromBitSet(bs *bitset.BitSet) (*BitSetVec, error) {
	v, err := FromElements[uint64, Lsb0[uint64]](bs.Bytes())
	if err != nil {
		return nil, err
	}
	v.Truncate(int(bs.Len()))
	return v, nil
}

// ToBitSet copies v into a bitset of the same length.
func ToBitSet(v *BitSetVec) *bitset.BitSet {
	n := v.Len()
	if n == 0 {
		return bitset.New(0)
	}
	words := make([]uint64, v.span.Elements())
	copy(words, v.Elements())
	// bitset treats every word bit as live until shrunk, so the dead
	// tail bits must be zero.
	words[len(words)-1] &= MaskRange[uint64, Lsb0[uint64]](0, v.span.Tail().End())
	return bitset.From(words).Shrink(uint(n - 1))
}
