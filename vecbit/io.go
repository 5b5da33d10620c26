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

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dgryski/go-bitstream"
)

// Wire format: a 64-bit big-endian bit count, then the live bits packed
// most significant first, zero padded to the next byte boundary. The
// format carries no element width or ordering, so any Slice or Vec
// instantiation can exchange data with any other.

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// WriteTo serializes the bits to w and returns the number of bytes
// written. It implements io.WriterTo.
func (s *Slice[T, O]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bitstream.NewWriter(cw)
	n := s.Len()
	if err := bw.WriteBits(uint64(n), 64); err != nil {
		return cw.n, err
	}
	for i := 0; i < n; i += 64 {
		k := min(64, n-i)
		if err := bw.WriteBits(s.Uint(i, k), k); err != nil {
			return cw.n, err
		}
	}
	if err := bw.Flush(bitstream.Zero); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

func (v *Vec[T, O]) WriteTo(w io.Writer) (int64, error) {
	return v.Slice().WriteTo(w)
}

func (f *Fixed[T, O]) WriteTo(w io.Writer) (int64, error) {
	return f.Slice().WriteTo(w)
}

// ReadFrom replaces v's contents with bits deserialized from r and
// returns the number of bytes consumed. It implements io.ReaderFrom.
func (v *Vec[T, O]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	br := bitstream.NewReader(cr)
	header, err := br.ReadBits(64)
	if err != nil {
		return cr.n, err
	}
	if header > uint64(MaxBits()) {
		return cr.n, &RangeError{Err: ErrTooManyBits, Value: header, Max: uint64(MaxBits())}
	}
	n := int(header)
	v.Clear()
	v.Reserve(n)
	for i := 0; i < n; i += 64 {
		k := min(64, n-i)
		word, err := br.ReadBits(k)
		if err != nil {
			return cr.n, err
		}
		for j := 0; j < k; j++ {
			v.Push(word>>(k-1-j)&1 == 1)
		}
	}
	return cr.n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the WriteTo
// wire format.
func (v *Vec[T, O]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := v.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The whole input
// must be consumed; truncated or trailing data fails with ErrCorrupt.
func (v *Vec[T, O]) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	if _, err := v.ReadFrom(r); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%w: truncated input", ErrCorrupt)
		}
		return err
	}
	if r.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, r.Len())
	}
	return nil
}

// Write appends the bits of p, eight per byte, most significant first. It
// implements io.Writer so a vector can collect the output of an io.Copy.
func (v *Vec[T, O]) Write(p []byte) (int, error) {
	v.Reserve(8 * len(p))
	for _, b := range p {
		for j := 7; j >= 0; j-- {
			v.Push(b>>uint(j)&1 == 1)
		}
	}
	return len(p), nil
}
