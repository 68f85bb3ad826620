package parlay_go

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelForVisitsEachIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 3, 8, 0} {
		const n = 1003
		hits := make([]int32, n)
		ParallelFor(n, workers, func(c Chunk) {
			for i := c.Start; i < c.End; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			require.EqualValues(t, 1, h, "index %d with %d workers", i, workers)
		}
	}
}

func TestParallelForEmpty(t *testing.T) {
	called := false
	ParallelFor(0, 4, func(Chunk) { called = true })
	require.False(t, called)
}

func TestReduce(t *testing.T) {
	sum := Reduce(100, 7, func(c Chunk) int {
		s := 0
		for i := c.Start; i < c.End; i++ {
			s += i
		}
		return s
	})
	require.Equal(t, 4950, sum)
	require.Equal(t, 0, Reduce(0, 4, func(Chunk) int { return 1 }))
}

func TestAppend(t *testing.T) {
	src := make([]uint32, 777)
	for i := range src {
		src[i] = uint32(i * 3)
	}
	dst := make([]uint32, len(src)+5)
	Append(src, dst[5:])
	require.Equal(t, src, dst[5:])
	require.Equal(t, make([]uint32, 5), dst[:5])
}

func TestPackIndex(t *testing.T) {
	const n = 200
	words := make([]uint64, (n+63)/64)
	want := []uint32{0, 5, 63, 64, 127, 128, 199}
	for _, i := range want {
		words[i>>6] |= 1 << (i & 63)
	}
	require.Equal(t, want, PackIndex(words, n))
	require.Empty(t, PackIndex(nil, 0))
}

func TestPackIndexIgnoresBitsPastN(t *testing.T) {
	words := []uint64{^uint64(0)}
	require.Equal(t, []uint32{0, 1, 2}, PackIndex(words, 3))
}

func TestForEachChunkPassesOrderedIndices(t *testing.T) {
	got := make([]Chunk, 4)
	k := ForEachChunk(10, 4, func(i int, c Chunk) { got[i] = c })
	require.Equal(t, 4, k)
	require.Equal(t, Chunks(10, 4), got)

	require.Equal(t, 2, ForEachChunk(2, 8, func(int, Chunk) {}))
	require.Zero(t, ForEachChunk(0, 8, func(int, Chunk) { t.Fatal("unexpected call") }))
}
