package vecbit

import "testing"

// fillPattern writes a deterministic pseudo-random pattern so bulk results
// can be checked against per-bit loops.
func fillPattern[T Element, O Order[T]](s *Slice[T, O], seed uint64) {
	x := seed
	for i := 0; i < s.Len(); i++ {
		x = x*2862933555777941757 + 3037000493
		s.Set(i, x>>63 == 1)
	}
}

func TestSliceOnesCount(t *testing.T) {
	v := Repeat[uint16, Msb0[uint16]](false, 300)
	fillPattern(v.Slice(), 7)

	ranges := [][2]int{{0, 300}, {3, 21}, {16, 48}, {5, 299}, {40, 40}, {37, 38}}
	for _, r := range ranges {
		s := v.Slice().Range(r[0], r[1])
		want := 0
		for i := 0; i < s.Len(); i++ {
			if s.Get(i) {
				want++
			}
		}
		if got := s.OnesCount(); got != want {
			t.Errorf("range [%d:%d): OnesCount got %d, want %d", r[0], r[1], got, want)
		}
		if got := s.ZerosCount(); got != s.Len()-want {
			t.Errorf("range [%d:%d): ZerosCount got %d, want %d", r[0], r[1], got, s.Len()-want)
		}
	}
}

func TestSliceFillSubrange(t *testing.T) {
	v := Repeat[uint8, Lsb0[uint8]](false, 40)
	v.Slice().Range(5, 29).Fill(true)
	for i := 0; i < 40; i++ {
		want := i >= 5 && i < 29
		if v.Get(i) != want {
			t.Fatalf("after fill: bit %d got %v, want %v", i, v.Get(i), want)
		}
	}
	v.Slice().Range(8, 16).Fill(false)
	for i := 0; i < 40; i++ {
		want := (i >= 5 && i < 8) || (i >= 16 && i < 29)
		if v.Get(i) != want {
			t.Fatalf("after clear: bit %d got %v, want %v", i, v.Get(i), want)
		}
	}
}

func TestSliceInvertSubrange(t *testing.T) {
	v := Repeat[uint32, Msb0[uint32]](false, 96)
	fillPattern(v.Slice(), 11)
	before := make([]bool, 96)
	for i := range before {
		before[i] = v.Get(i)
	}
	v.Slice().Range(7, 71).Invert()
	for i := 0; i < 96; i++ {
		want := before[i]
		if i >= 7 && i < 71 {
			want = !want
		}
		if v.Get(i) != want {
			t.Fatalf("bit %d: got %v, want %v", i, v.Get(i), want)
		}
	}
}

func TestSliceAnyAllNone(t *testing.T) {
	empty := New[uint8, Msb0[uint8]]().Slice()
	if empty.Any() || !empty.All() || !empty.None() {
		t.Error("empty: want Any=false, All=true, None=true")
	}

	ones := Repeat[uint8, Msb0[uint8]](true, 21)
	if !ones.Slice().All() || !ones.Slice().Any() || ones.Slice().None() {
		t.Error("all ones misreported")
	}

	// One clear bit in the interior breaks All but not Any.
	ones.Set(13, false)
	s := ones.Slice()
	if s.All() || !s.Any() || s.None() {
		t.Error("single zero misreported")
	}

	zeros := Repeat[uint64, Lsb0[uint64]](false, 130)
	if zeros.Slice().Any() || !zeros.Slice().None() {
		t.Error("all zeros misreported")
	}
	zeros.Set(129, true)
	if !zeros.Slice().Any() || zeros.Slice().None() {
		t.Error("last-bit one missed")
	}
}

func TestSliceEqual(t *testing.T) {
	a := Repeat[uint8, Msb0[uint8]](false, 50)
	fillPattern(a.Slice(), 3)
	b := a.Clone()

	if !a.Slice().Equal(b.Slice()) {
		t.Error("identical vectors not equal")
	}

	// Same content at different storage offsets.
	shifted := Repeat[uint8, Msb0[uint8]](false, 60)
	for i := 0; i < 50; i++ {
		shifted.Set(i+3, a.Get(i))
	}
	if !a.Slice().Equal(shifted.Slice().Range(3, 53)) {
		t.Error("offset view with same bits not equal")
	}

	b.Toggle(17)
	if a.Slice().Equal(b.Slice()) {
		t.Error("single-bit difference missed")
	}

	if a.Slice().Equal(a.Slice().Range(0, 49)) {
		t.Error("length mismatch reported equal")
	}
}

func TestSliceCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "0110", "0110", 0},
		{"less_at_last", "0110", "0111", -1},
		{"greater_at_first", "1000", "0111", 1},
		{"prefix_shorter", "011", "0110", -1},
		{"prefix_longer", "0110", "011", 1},
		{"both_empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse[uint8, Msb0[uint8]](tt.a)
			b := MustParse[uint8, Msb0[uint8]](tt.b)
			if got := a.Slice().Compare(b.Slice()); got != tt.want {
				t.Errorf("Compare(%q, %q): got %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSliceCopyFrom(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		src := Repeat[uint8, Msb0[uint8]](false, 64)
		fillPattern(src.Slice(), 21)
		dst := Repeat[uint8, Msb0[uint8]](false, 64)
		dst.Slice().Range(5, 61).CopyFrom(src.Slice().Range(5, 61))
		for i := 0; i < 64; i++ {
			want := i >= 5 && i < 61 && src.Get(i)
			if dst.Get(i) != want {
				t.Fatalf("bit %d: got %v, want %v", i, dst.Get(i), want)
			}
		}
	})

	t.Run("unaligned", func(t *testing.T) {
		src := Repeat[uint8, Msb0[uint8]](false, 40)
		fillPattern(src.Slice(), 22)
		dst := Repeat[uint8, Msb0[uint8]](false, 40)
		dst.Slice().Range(3, 19).CopyFrom(src.Slice().Range(8, 24))
		for i := 0; i < 16; i++ {
			if dst.Get(3+i) != src.Get(8+i) {
				t.Fatalf("bit %d: got %v, want %v", i, dst.Get(3+i), src.Get(8+i))
			}
		}
	})

	t.Run("length_mismatch_panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("no panic")
			}
		}()
		a := Repeat[uint8, Msb0[uint8]](false, 8)
		b := Repeat[uint8, Msb0[uint8]](false, 9)
		a.Slice().CopyFrom(b.Slice())
	})
}

func TestSliceBoolOps(t *testing.T) {
	ops := []struct {
		name  string
		apply func(dst, src *Slice[uint16, Lsb0[uint16]])
		bit   func(a, b bool) bool
	}{
		{"and", func(d, s *Slice[uint16, Lsb0[uint16]]) { d.And(s) }, func(a, b bool) bool { return a && b }},
		{"or", func(d, s *Slice[uint16, Lsb0[uint16]]) { d.Or(s) }, func(a, b bool) bool { return a || b }},
		{"xor", func(d, s *Slice[uint16, Lsb0[uint16]]) { d.Xor(s) }, func(a, b bool) bool { return a != b }},
	}
	offsets := [][2]int{{4, 4}, {4, 9}} // equal and differing element offsets
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, off := range offsets {
				dst := Repeat[uint16, Lsb0[uint16]](false, 128)
				src := Repeat[uint16, Lsb0[uint16]](false, 128)
				fillPattern(dst.Slice(), 31)
				fillPattern(src.Slice(), 47)

				const n = 90
				want := make([]bool, n)
				for i := 0; i < n; i++ {
					want[i] = op.bit(dst.Get(off[0]+i), src.Get(off[1]+i))
				}

				op.apply(dst.Slice().Range(off[0], off[0]+n), src.Slice().Range(off[1], off[1]+n))
				for i := 0; i < n; i++ {
					if dst.Get(off[0]+i) != want[i] {
						t.Fatalf("offsets %v bit %d: got %v, want %v",
							off, i, dst.Get(off[0]+i), want[i])
					}
				}
			}
		})
	}
}
