package vecbit

import (
	"encoding/binary"

	"github.com/dgryski/go-metro"
)

// Sum64 returns a 64-bit metrohash digest of the bit contents. The digest
// covers the length and the packed bits only, so equal sequences hash
// equal no matter their element width, ordering, or offset in storage.
// The bytes hashed are exactly the MarshalBinary encoding.
func (s *Slice[T, O]) Sum64() uint64 {
	n := s.Len()
	buf := make([]byte, 0, 8+(n+7)/8)
	buf = binary.BigEndian.AppendUint64(buf, uint64(n))
	for i := 0; i < n; i += 8 {
		k := min(8, n-i)
		buf = append(buf, byte(s.Uint(i, k)<<(8-k)))
	}
	return metro.Hash64(buf, 0)
}

func (v *Vec[T, O]) Sum64() uint64 {
	return v.Slice().Sum64()
}

func (f *Fixed[T, O]) Sum64() uint64 {
	return f.Slice().Sum64()
}
