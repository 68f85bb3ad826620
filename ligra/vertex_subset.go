package ligra

import (
	"ligra_bfs_go/bitutils"
	"ligra_bfs_go/parlay_go"
)

// VertexSubset is a frontier: a set of vertices out of a graph with n vertices,
// held either sparsely (a list of ids) or densely (a bitset over [0, n)).
//
// A subset is owned by whoever created it and must be released exactly once
// with Release. Using a released subset panics.
type VertexSubset struct {
	// n is the number of vertices in the underlying graph.
	n int
	// size is the number of vertices in the subset.
	size     int
	isSparse bool
	sparse   []uint32
	dense    []uint64
	released bool
}

// NewEmpty creates an empty sparse subset.
func NewEmpty(n int) *VertexSubset {
	return &VertexSubset{n: n, isSparse: true, sparse: []uint32{}}
}

// NewSingle creates a subset holding only v.
func NewSingle(n int, v uint32) *VertexSubset {
	return &VertexSubset{n: n, size: 1, isSparse: true, sparse: []uint32{v}}
}

// NewSparse wraps a list of distinct vertices. The subset takes ownership of the slice.
func NewSparse(n int, vertices []uint32) *VertexSubset {
	return &VertexSubset{n: n, size: len(vertices), isSparse: true, sparse: vertices}
}

// NewDense wraps a bitset of bitutils.Words(n) words. The subset takes ownership.
func NewDense(n int, words []uint64) *VertexSubset {
	size := parlay_go.Reduce(len(words), 0, func(c parlay_go.Chunk) int {
		return bitutils.Count(words, c.Start, c.End)
	})
	return &VertexSubset{n: n, size: size, dense: words}
}

func (vs *VertexSubset) check() {
	if vs.released {
		panic("ligra: use of released VertexSubset")
	}
}

// Size returns the number of vertices in the subset.
func (vs *VertexSubset) Size() int {
	vs.check()
	return vs.size
}

// IsEmpty reports whether the subset has no vertices.
func (vs *VertexSubset) IsEmpty() bool {
	return vs.Size() == 0
}

// IsSparse reports the current representation.
func (vs *VertexSubset) IsSparse() bool {
	vs.check()
	return vs.isSparse
}

// NumVertices returns n, the size of the vertex universe.
func (vs *VertexSubset) NumVertices() int {
	return vs.n
}

// Contains reports whether v is in the subset. Linear in the sparse form.
func (vs *VertexSubset) Contains(v uint32) bool {
	vs.check()
	if !vs.isSparse {
		return bitutils.TestBit(vs.dense, v)
	}
	for _, u := range vs.sparse {
		if u == v {
			return true
		}
	}
	return false
}

// AddVertices adds vertices to the subset. In the sparse form the caller
// guarantees they are not already present; the dense form sets bits directly.
func (vs *VertexSubset) AddVertices(V []uint32) {
	vs.check()
	if vs.isSparse {
		old := len(vs.sparse)
		total := old + len(V)
		if cap(vs.sparse) < total {
			// Reallocate like parlay::append, copying the old part in parallel
			grown := make([]uint32, old, total)
			parlay_go.Append(vs.sparse, grown)
			vs.sparse = grown
		}
		vs.sparse = vs.sparse[:total]
		parlay_go.Append(V, vs.sparse[old:]) // new vertices go after the old ones
		vs.size = total
		return
	}
	// Dense: plain loop, SetBit tells us whether v was new
	for _, v := range V {
		if bitutils.SetBit(vs.dense, v) {
			vs.size++
		}
	}
}

// ToSeq returns the vertices as a list; sorted when the subset is dense.
// The returned slice must not be modified.
func (vs *VertexSubset) ToSeq() []uint32 {
	vs.check()
	if vs.isSparse {
		return vs.sparse
	}
	return parlay_go.PackIndex(vs.dense, vs.n)
}

// denseView returns vs itself when it is dense, or a dense copy of it. The copy
// must be released by the caller.
func (vs *VertexSubset) denseView() (view *VertexSubset, owned bool) {
	if !vs.IsSparse() {
		return vs, false
	}
	return &VertexSubset{n: vs.n, size: vs.size, dense: vs.ToDense()}, true
}

// ToDense returns the subset as a bitset. The returned slice must not be modified.
func (vs *VertexSubset) ToDense() []uint64 {
	vs.check()
	if !vs.isSparse {
		return vs.dense
	}
	words := make([]uint64, bitutils.Words(vs.n))
	parlay_go.ParallelFor(len(vs.sparse), 0, func(c parlay_go.Chunk) {
		for _, v := range vs.sparse[c.Start:c.End] {
			bitutils.SetBit(words, v)
		}
	})
	return words
}

// Release drops the subset's storage. Releasing twice panics.
func (vs *VertexSubset) Release() {
	if vs.released {
		panic("ligra: VertexSubset released twice")
	}
	vs.released = true
	vs.sparse, vs.dense = nil, nil
	vs.size = 0
}
