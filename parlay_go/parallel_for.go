package parlay_go

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// Workers resolves a requested worker count, falling back to GOMAXPROCS.
func Workers(requested int) int {
	if requested > 0 {
		return requested
	}
	return runtime.GOMAXPROCS(0)
}

// ParallelFor runs body once per non-empty chunk of [0, n) with at most
// `workers` goroutines and returns after every call has finished.
// A panic in body is re-raised in the caller.
func ParallelFor(n, workers int, body func(c Chunk)) {
	if n <= 0 {
		return
	}
	// Decide number of workers, never more than there are indices
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers == 1 { // No goroutine needed, run in the caller
		body(Chunk{Start: 0, End: n})
		return
	}
	// Bounded pool: at most `workers` chunks run at once
	p := pool.New().WithMaxGoroutines(workers)
	for _, c := range Chunks(n, workers) {
		if c.Len() == 0 {
			continue
		}
		p.Go(func() { body(c) })
	}
	// Wait for all chunks to finish (re-panics if a body panicked)
	p.Wait()
}

// ForEachChunk splits [0, n) into min(workers, n) chunks and runs body for each
// in parallel, passing the chunk's index so callers can keep per-chunk results
// in order. It returns the number of chunks.
func ForEachChunk(n, workers int, body func(i int, c Chunk)) int {
	workers = Workers(workers)
	if workers > n {
		workers = n
	}
	if workers <= 0 {
		return 0
	}
	chunks := Chunks(n, workers)
	ParallelFor(len(chunks), workers, func(c Chunk) {
		for i := c.Start; i < c.End; i++ {
			body(i, chunks[i])
		}
	})
	return len(chunks)
}

// Reduce sums f over the chunks of [0, n) computed in parallel.
func Reduce(n, workers int, f func(c Chunk) int) int {
	partial := make([]int, max(Workers(workers), 0))
	k := ForEachChunk(n, workers, func(i int, c Chunk) {
		partial[i] = f(c)
	})
	// Sequential sum of the per-chunk partials
	total := 0
	for _, p := range partial[:k] {
		total += p
	}
	return total
}
