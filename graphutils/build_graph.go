package graphutils

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooManyVertices is returned when a graph cannot be indexed by uint32
	// while keeping math.MaxUint32 free as the unvisited marker.
	ErrTooManyVertices = errors.New("graphutils: too many vertices")

	// ErrBadEdge is returned when an edge points outside [0, n).
	ErrBadEdge = errors.New("graphutils: edge endpoint out of range")

	// ErrBadOffsets is returned when CSR offsets are not a valid prefix sum.
	ErrBadOffsets = errors.New("graphutils: malformed offsets")
)

// MaxVertices is the largest vertex count a Graph accepts.
const MaxVertices = math.MaxUint32 - 1

// Graph is a CSR graph holding both the forward adjacency (out-edges) and its
// transpose (in-edges). For symmetric graphs both views share storage.
type Graph struct {
	offsets   []uint64
	edges     []uint32
	inOffsets []uint64
	inEdges   []uint32
	symmetric bool
}

// FromCSR validates a CSR pair and builds the graph with its transpose.
// offsets must have n+1 entries with offsets[n] == len(edges).
func FromCSR(offsets []uint64, edges []uint32, symmetric bool) (*Graph, error) {
	if len(offsets) == 0 {
		offsets = []uint64{0}
	}
	n := len(offsets) - 1
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	if offsets[0] != 0 || offsets[n] != uint64(len(edges)) {
		return nil, fmt.Errorf("%w: offsets[0]=%d offsets[n]=%d m=%d", ErrBadOffsets, offsets[0], offsets[n], len(edges))
	}
	for u := 0; u < n; u++ {
		if offsets[u] > offsets[u+1] {
			return nil, fmt.Errorf("%w: offsets[%d] > offsets[%d]", ErrBadOffsets, u, u+1)
		}
	}
	for i, v := range edges {
		if int(v) >= n {
			return nil, fmt.Errorf("%w: edge %d targets %d, n=%d", ErrBadEdge, i, v, n)
		}
	}

	g := &Graph{offsets: offsets, edges: edges, symmetric: symmetric}
	if symmetric {
		g.inOffsets, g.inEdges = offsets, edges
	} else {
		g.inOffsets, g.inEdges = transposeCSR(offsets, edges)
	}
	return g, nil
}

// FromAdjacency flattens adjacency lists into CSR form and builds the graph.
func FromAdjacency(adj [][]uint32, symmetric bool) (*Graph, error) {
	n := len(adj)
	offsets := make([]uint64, n+1)
	for u := 0; u < n; u++ {
		offsets[u+1] = offsets[u] + uint64(len(adj[u]))
	}
	edges := make([]uint32, 0, offsets[n])
	for u := 0; u < n; u++ {
		edges = append(edges, adj[u]...)
	}
	return FromCSR(offsets, edges, symmetric)
}

// transposeCSR builds in-edge CSR arrays with a counting sort by destination.
// Sources inside each in-list stay in increasing order.
func transposeCSR(offsets []uint64, edges []uint32) ([]uint64, []uint32) {
	n := len(offsets) - 1
	inOffsets := make([]uint64, n+1)
	for _, v := range edges {
		inOffsets[v+1]++
	}
	for v := 0; v < n; v++ {
		inOffsets[v+1] += inOffsets[v]
	}
	next := make([]uint64, n)
	copy(next, inOffsets[:n])
	inEdges := make([]uint32, len(edges))
	for u := 0; u < n; u++ {
		for idx := offsets[u]; idx < offsets[u+1]; idx++ {
			v := edges[idx]
			inEdges[next[v]] = uint32(u)
			next[v]++
		}
	}
	return inOffsets, inEdges
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return len(g.offsets) - 1 }

// NumEdges returns m, the number of directed edges stored.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Symmetric reports whether the graph was built as undirected.
func (g *Graph) Symmetric() bool { return g.symmetric }

// OutNeighbors returns the targets of v's out-edges. The slice aliases graph storage.
func (g *Graph) OutNeighbors(v uint32) []uint32 {
	return g.edges[g.offsets[v]:g.offsets[v+1]]
}

// InNeighbors returns the sources of v's in-edges. The slice aliases graph storage.
func (g *Graph) InNeighbors(v uint32) []uint32 {
	return g.inEdges[g.inOffsets[v]:g.inOffsets[v+1]]
}

// OutDegree returns the number of out-edges of v.
func (g *Graph) OutDegree(v uint32) int {
	return int(g.offsets[v+1] - g.offsets[v])
}

// HasEdge reports whether (u, v) is an out-edge of u.
func (g *Graph) HasEdge(u, v uint32) bool {
	for _, w := range g.OutNeighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}

// CSR exposes the forward arrays, e.g. for writing the graph back out.
func (g *Graph) CSR() (offsets []uint64, edges []uint32) {
	return g.offsets, g.edges
}
