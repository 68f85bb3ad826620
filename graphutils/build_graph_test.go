package graphutils

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// diamond is 0→1, 0→2, 1→3, 2→3, 3→4 plus an isolated vertex 5.
func diamond(t *testing.T) *Graph {
	t.Helper()
	g, err := FromAdjacency([][]uint32{{1, 2}, {3}, {3}, {4}, {}, {}}, false)
	require.NoError(t, err)
	return g
}

func TestFromAdjacency(t *testing.T) {
	g := diamond(t)
	require.Equal(t, 6, g.NumVertices())
	require.Equal(t, 5, g.NumEdges())
	require.Equal(t, []uint32{1, 2}, g.OutNeighbors(0))
	require.Equal(t, []uint32{1, 2}, g.InNeighbors(3))
	require.Equal(t, []uint32{0}, g.InNeighbors(2))
	require.Empty(t, g.InNeighbors(0))
	require.Empty(t, g.OutNeighbors(5))
	require.Equal(t, 2, g.OutDegree(0))
	require.True(t, g.HasEdge(3, 4))
	require.False(t, g.HasEdge(4, 3))
	require.False(t, g.Symmetric())
}

func TestSymmetricSharesStorage(t *testing.T) {
	g, err := FromAdjacency([][]uint32{{1}, {0, 2}, {1}}, true)
	require.NoError(t, err)
	require.True(t, g.Symmetric())
	require.Equal(t, g.OutNeighbors(1), g.InNeighbors(1))
}

func TestFromCSRRejectsMalformedInput(t *testing.T) {
	_, err := FromCSR([]uint64{0, 1}, []uint32{3}, false)
	require.ErrorIs(t, err, ErrBadEdge)

	_, err = FromCSR([]uint64{0, 2, 1}, []uint32{0}, false)
	require.ErrorIs(t, err, ErrBadOffsets)

	_, err = FromCSR([]uint64{1, 1}, []uint32{0}, false)
	require.ErrorIs(t, err, ErrBadOffsets)
}

func TestFromCSREmpty(t *testing.T) {
	g, err := FromCSR(nil, nil, false)
	require.NoError(t, err)
	require.Zero(t, g.NumVertices())
	require.Zero(t, g.NumEdges())
}

func TestTransposeMatchesEdgeList(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 300
	adj := make([][]uint32, n)
	for u := range adj {
		for k := rng.IntN(6); k > 0; k-- {
			adj[u] = append(adj[u], uint32(rng.IntN(n)))
		}
	}
	g, err := FromAdjacency(adj, false)
	require.NoError(t, err)

	count := make(map[[2]uint32]int)
	for u := range adj {
		for _, v := range adj[u] {
			count[[2]uint32{uint32(u), v}]++
		}
	}
	for v := uint32(0); v < n; v++ {
		for _, u := range g.InNeighbors(v) {
			count[[2]uint32{u, v}]--
		}
	}
	for e, c := range count {
		require.Zero(t, c, "edge %v", e)
	}
}

func TestPickSources(t *testing.T) {
	g := diamond(t)
	rng := rand.New(rand.NewPCG(7, 7))

	got := PickSources(g, 10, 1, rng)
	require.ElementsMatch(t, []uint32{0, 1, 2, 3}, got)

	got = PickSources(g, 2, 1, rng)
	require.Len(t, got, 2)
	for _, v := range got {
		require.GreaterOrEqual(t, g.OutDegree(v), 1)
	}

	require.Len(t, PickSources(g, 6, 0, nil), 6)
}
