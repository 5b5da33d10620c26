// Copyright 2026 go-vecbit Authors. SPDX-License-Identifier: Apache-2.0

package par

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/sunjay/go-vecbit/vecbit"
)

// testVec builds an n-bit vector with a seeded pattern.
func testVec(n int, seed uint64) *vecbit.Vec[uint64, vecbit.Msb0[uint64]] {
	v := vecbit.New[uint64, vecbit.Msb0[uint64]]()
	x := seed
	for i := 0; i < n; i++ {
		x = x*2862933555777941757 + 3037000493
		v.Push(x>>63 == 1)
	}
	return v
}

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	pool.parallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	// n smaller than the worker count
	n := 3
	var count atomic.Int32

	pool.parallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.parallelFor(0, func(start, end int) {
		called = true
	})

	if called {
		t.Error("parallelFor with n=0 should not call fn")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := MinParallelBits + 100
	v := testVec(n, 1)
	want := v.Slice().OnesCount()

	// Operations on a closed pool run sequentially and stay correct.
	if got := OnesCount(pool, v.Slice()); got != want {
		t.Errorf("OnesCount on closed pool = %d, want %d", got, want)
	}
}

func TestOnesCount(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	tests := []struct {
		name string
		bits int
	}{
		{"below_threshold", 100},
		{"above_threshold", MinParallelBits + 1234},
		{"element_aligned", MinParallelBits + 4096},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testVec(tt.bits+16, 3)
			s := v.Slice().Range(5, 5+tt.bits)
			want := s.OnesCount()
			if got := OnesCount(pool, s); got != want {
				t.Errorf("OnesCount = %d, want %d", got, want)
			}
			if got := OnesCount(nil, s); got != want {
				t.Errorf("OnesCount(nil pool) = %d, want %d", got, want)
			}
		})
	}
}

func TestFill(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := MinParallelBits + 777
	v := vecbit.New[uint64, vecbit.Msb0[uint64]]()
	v.Resize(n+16, false)
	s := v.Slice().Range(9, 9+n)

	Fill(pool, s, true)
	if got := s.OnesCount(); got != n {
		t.Errorf("after Fill(true): OnesCount = %d, want %d", got, n)
	}
	// The neighbouring bits outside the view must be untouched.
	for _, i := range []int{0, 8, 9 + n, n + 15} {
		if v.Get(i) {
			t.Errorf("bit %d outside the view was set", i)
		}
	}

	Fill(pool, s, false)
	if got := s.OnesCount(); got != 0 {
		t.Errorf("after Fill(false): OnesCount = %d, want 0", got)
	}
}

func TestXor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := MinParallelBits + 555
	a := testVec(n+16, 11)
	b := testVec(n+16, 22)

	want := make([]bool, n)
	for i := 0; i < n; i++ {
		want[i] = a.Get(7+i) != b.Get(7+i)
	}

	dst := a.Slice().Range(7, 7+n)
	src := b.Slice().Range(7, 7+n)
	Xor(pool, dst, src)

	for i := 0; i < n; i++ {
		if dst.Get(i) != want[i] {
			t.Fatalf("bit %d = %v, want %v", i, dst.Get(i), want[i])
		}
	}
	// Bits outside the view and the source are untouched.
	check := testVec(n+16, 22)
	if !b.Equal(check) {
		t.Error("source was modified")
	}
	orig := testVec(n+16, 11)
	for _, i := range []int{0, 6, 7 + n, n + 15} {
		if a.Get(i) != orig.Get(i) {
			t.Errorf("bit %d outside the view changed", i)
		}
	}
}

// Views at different element offsets cannot be paired elementwise; the
// result must still be correct through the sequential fallback.
func TestXorOffsetMismatch(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := MinParallelBits + 128
	a := testVec(n+16, 5)
	b := testVec(n+16, 6)

	want := make([]bool, n)
	for i := 0; i < n; i++ {
		want[i] = a.Get(3+i) != b.Get(5+i)
	}

	dst := a.Slice().Range(3, 3+n)
	src := b.Slice().Range(5, 5+n)
	Xor(pool, dst, src)

	for i := 0; i < n; i++ {
		if dst.Get(i) != want[i] {
			t.Fatalf("bit %d = %v, want %v", i, dst.Get(i), want[i])
		}
	}
}

func TestXorLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	a := testVec(64, 1)
	b := testVec(32, 2)
	Xor(nil, a.Slice(), b.Slice())
}

func BenchmarkOnesCount(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	v := testVec(1<<20, 9)
	s := v.Slice()

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			OnesCount(pool, s)
		}
	})
	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s.OnesCount()
		}
	})
}

func BenchmarkFill(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	v := vecbit.New[uint64, vecbit.Msb0[uint64]]()
	v.Resize(1<<20, false)
	s := v.Slice()

	b.Run("Pool", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Fill(pool, s, i%2 == 0)
		}
	})
	b.Run("Sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s.Fill(i%2 == 0)
		}
	})
}
