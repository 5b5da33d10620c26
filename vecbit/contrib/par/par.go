// Copyright 2026 go-vecbit Authors. SPDX-License-Identifier: Apache-2.0

// Package par runs bulk bit operations across a persistent worker pool.
// A Pool is created once and reused across many operations, so the
// per-call cost is two channel sends per worker rather than goroutine
// spawning.
//
// Only the interior elements of a view are parallelized. The partial
// edge elements are handled on the calling goroutine with masked atomic
// updates, so a view sharing its edge elements with neighbouring views
// stays safe.
//
// Usage:
//
//	pool := par.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, shard := range shards {
//	    par.Fill(pool, shard, true)
//	}
package par

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/sunjay/go-vecbit/vecbit"
)

// MinParallelBits is the view length below which the operations here fall
// back to their sequential equivalents. Splitting smaller views costs more
// in synchronization than the scan itself.
const MinParallelBits = 1 << 15

// Pool is a persistent set of worker goroutines. Workers are spawned once
// at creation and persist until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers workers, or GOMAXPROCS workers when
// numWorkers <= 0.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes; calling Close twice
// is safe. Operations on a closed pool run sequentially.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// parallelFor splits [0, n) into one contiguous chunk per worker and
// blocks until every chunk is done.
func (p *Pool) parallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.closed.Load() {
		fn(0, n)
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}
	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			wg.Done()
			continue
		}
		p.workC <- workItem{
			fn:      func() { fn(start, end) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// OnesCount returns the number of set bits in s, counting the interior
// elements across the pool.
func OnesCount[T vecbit.Element, O vecbit.Order[T]](p *Pool, s *vecbit.Slice[T, O]) int {
	if p == nil || s.Len() < MinParallelBits {
		return s.OnesCount()
	}
	edges := 0
	var interior atomic.Int64
	d := s.Span().Domain()
	d.Parts(
		func(cell *vecbit.Access[T], from, to uint8) {
			edges += vecbit.PopCount(cell.Load() & vecbit.MaskRange[T, O](from, to))
		},
		func(cells []vecbit.Access[T]) {
			elts := vecbit.Unwrap(cells)
			p.parallelFor(len(elts), func(start, end int) {
				n := 0
				for _, e := range elts[start:end] {
					n += vecbit.PopCount(e)
				}
				interior.Add(int64(n))
			})
		})
	return edges + int(interior.Load())
}

// Fill writes bit to every position of s, filling the interior elements
// across the pool.
func Fill[T vecbit.Element, O vecbit.Order[T]](p *Pool, s *vecbit.Slice[T, O], bit bool) {
	if p == nil || s.Len() < MinParallelBits {
		s.Fill(bit)
		return
	}
	full := vecbit.Filled[T](bit)
	d := s.Span().Domain()
	d.Parts(
		func(cell *vecbit.Access[T], from, to uint8) {
			m := vecbit.MaskRange[T, O](from, to)
			if bit {
				cell.SetBits(m)
			} else {
				cell.ClearBits(m)
			}
		},
		func(cells []vecbit.Access[T]) {
			elts := vecbit.Unwrap(cells)
			p.parallelFor(len(elts), func(start, end int) {
				for i := start; i < end; i++ {
					elts[i] = full
				}
			})
		})
}

// Xor folds src into dst by symmetric difference, running the interior
// elements across the pool. Both views must have the same length. Views
// whose bits sit at different element offsets cannot be paired
// elementwise and fall back to the sequential path.
func Xor[T vecbit.Element, O vecbit.Order[T]](p *Pool, dst, src *vecbit.Slice[T, O]) {
	n := dst.Len()
	if n != src.Len() {
		panic("par: length mismatch")
	}
	if p == nil || n < MinParallelBits ||
		dst.Span().Head().Pos() != src.Span().Head().Pos() {
		dst.Xor(src)
		return
	}
	a := dst.Span().Cells()
	b := src.Span().Slice()
	w := vecbit.BitsOf[T]()
	headMask := vecbit.MaskRange[T, O](dst.Span().Head().Pos(), w)
	tailMask := vecbit.MaskRange[T, O](0, dst.Span().Tail().End())
	last := len(a) - 1
	if last == 0 {
		a[0].InvertBits(b[0] & headMask & tailMask)
		return
	}
	a[0].InvertBits(b[0] & headMask)
	a[last].InvertBits(b[last] & tailMask)
	interiorA := vecbit.Unwrap(a[1:last])
	interiorB := b[1:last]
	p.parallelFor(len(interiorA), func(start, end int) {
		for i := start; i < end; i++ {
			interiorA[i] ^= interiorB[i]
		}
	})
}
