package vecbit_test

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunjay/go-vecbit/vecbit"
)

// patternVec builds an n-bit vector with a length-seeded pattern.
func patternVec(n int) *vecbit.Vec[uint8, vecbit.Msb0[uint8]] {
	v := vecbit.New[uint8, vecbit.Msb0[uint8]]()
	x := uint64(n)*2862933555777941757 + 3037000493
	for i := 0; i < n; i++ {
		x = x*2862933555777941757 + 3037000493
		v.Push(x>>63 == 1)
	}
	return v
}

func TestWireRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 63, 64, 65, 200} {
		t.Run(fmt.Sprintf("%d_bits", n), func(t *testing.T) {
			req := require.New(t)
			src := patternVec(n)

			var buf bytes.Buffer
			written, err := src.WriteTo(&buf)
			req.NoError(err)
			wantBytes := int64(8 + (n+7)/8)
			req.Equal(wantBytes, written)
			req.Equal(wantBytes, int64(buf.Len()))

			// Start from non-empty state to prove ReadFrom replaces it.
			dst := patternVec(17)
			read, err := dst.ReadFrom(bytes.NewReader(buf.Bytes()))
			req.NoError(err)
			req.Equal(wantBytes, read)
			req.True(src.Equal(dst), "want %v, got %v", src, dst)
		})
	}
}

func TestWireCrossInstantiation(t *testing.T) {
	req := require.New(t)
	src := patternVec(100)

	var buf bytes.Buffer
	_, err := src.WriteTo(&buf)
	req.NoError(err)

	dst := vecbit.New[uint64, vecbit.Lsb0[uint64]]()
	_, err = dst.ReadFrom(bytes.NewReader(buf.Bytes()))
	req.NoError(err)

	req.Equal(src.Len(), dst.Len())
	for i := 0; i < src.Len(); i++ {
		req.Equal(src.Get(i), dst.Get(i), "bit %d", i)
	}
}

// A mid-element view serializes exactly its own bits.
func TestWireOffsetView(t *testing.T) {
	req := require.New(t)
	v := patternVec(40)
	view := v.Slice().Range(3, 31)

	var buf bytes.Buffer
	written, err := view.WriteTo(&buf)
	req.NoError(err)
	req.Equal(int64(8+4), written) // 28 bits pack into 4 bytes

	got := vecbit.New[uint16, vecbit.Msb0[uint16]]()
	_, err = got.ReadFrom(&buf)
	req.NoError(err)
	req.Equal(28, got.Len())
	for i := 0; i < 28; i++ {
		req.Equal(view.Get(i), got.Get(i), "bit %d", i)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	req := require.New(t)
	src := patternVec(77)

	data, err := src.MarshalBinary()
	req.NoError(err)
	req.Len(data, 8+10)

	dst := vecbit.New[uint8, vecbit.Msb0[uint8]]()
	req.NoError(dst.UnmarshalBinary(data))
	req.True(src.Equal(dst))
}

func TestUnmarshalErrors(t *testing.T) {
	req := require.New(t)
	data, err := patternVec(100).MarshalBinary()
	req.NoError(err)

	t.Run("truncated", func(t *testing.T) {
		req := require.New(t)
		for _, cut := range []int{0, 4, 8, 10} {
			v := vecbit.New[uint8, vecbit.Msb0[uint8]]()
			err := v.UnmarshalBinary(data[:cut])
			req.ErrorIs(err, vecbit.ErrCorrupt, "cut at %d bytes", cut)
		}
	})

	t.Run("trailing_garbage", func(t *testing.T) {
		req := require.New(t)
		v := vecbit.New[uint8, vecbit.Msb0[uint8]]()
		err := v.UnmarshalBinary(append(append([]byte{}, data...), 0xFF))
		req.ErrorIs(err, vecbit.ErrCorrupt)
		req.Contains(err.Error(), "trailing")
	})

	t.Run("oversized_header", func(t *testing.T) {
		req := require.New(t)
		huge := bytes.Repeat([]byte{0xFF}, 16)
		v := vecbit.New[uint8, vecbit.Msb0[uint8]]()
		err := v.UnmarshalBinary(huge)
		req.ErrorIs(err, vecbit.ErrTooManyBits)
		var re *vecbit.RangeError
		req.ErrorAs(err, &re)
		req.Equal(uint64(vecbit.MaxBits()), re.Max)
	})
}

// Vec.Write makes a vector a valid io.Copy destination, eight bits per
// byte.
func TestVecWriteBytes(t *testing.T) {
	req := require.New(t)

	v := mk("11")
	n, err := v.Write([]byte{0xA5, 0x0F})
	req.NoError(err)
	req.Equal(2, n)
	req.Equal("[11101001, 01000011, 11]", v.String())

	copied, err := io.Copy(v, bytes.NewReader([]byte{0x80}))
	req.NoError(err)
	req.Equal(int64(1), copied)
	req.Equal(18+8, v.Len())
	req.True(v.Get(18))
	req.False(v.Get(19))
}

func TestReadFromConsumesExactly(t *testing.T) {
	req := require.New(t)

	var buf bytes.Buffer
	_, err := patternVec(13).WriteTo(&buf)
	req.NoError(err)
	buf.Write([]byte{0xDE, 0xAD})

	v := vecbit.New[uint8, vecbit.Msb0[uint8]]()
	read, err := v.ReadFrom(&buf)
	req.NoError(err)
	req.Equal(int64(8+2), read)
	req.Equal(13, v.Len())
	// The trailing bytes stay in the reader for the next consumer.
	req.Equal([]byte{0xDE, 0xAD}, buf.Bytes())
}
