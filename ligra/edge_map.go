// Package ligra is a small shared-memory frontier engine in the style of Ligra:
// a VertexSubset frontier and an EdgeMap that expands it one BFS level at a
// time, switching between sparse (push) and dense (pull) traversal.
package ligra

import (
	"ligra_bfs_go/bitutils"
	"ligra_bfs_go/parlay_go"
)

// Graph is the adjacency view the engine traverses.
type Graph interface {
	NumVertices() int
	NumEdges() int
	OutNeighbors(v uint32) []uint32
	InNeighbors(v uint32) []uint32
}

// Functor is the per-edge update contract.
//
// Cond(d) reports whether d may still be updated. Update(s, d) is only called
// when no other goroutine can touch d in the same step (dense mode, where each
// destination is scanned by one goroutine). UpdateAtomic(s, d) may race with
// other updates of d (sparse mode) and must resolve them atomically.
// Both report whether d should join the next frontier.
type Functor interface {
	Cond(d uint32) bool
	Update(s, d uint32) bool
	UpdateAtomic(s, d uint32) bool
}

// Mode selects the traversal strategy of EdgeMap.Run.
type Mode int

const (
	// Auto picks sparse or dense per step from the frontier's out-degree.
	Auto Mode = iota
	// Sparse always pushes from frontier vertices along out-edges.
	Sparse
	// Dense always pulls into unvisited vertices along in-edges.
	Dense
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Sparse:
		return "sparse"
	case Dense:
		return "dense"
	default:
		return "unknown"
	}
}

// ParseMode maps "auto", "sparse" or "dense" to a Mode.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{Auto, Sparse, Dense} {
		if m.String() == s {
			return m, true
		}
	}
	return Auto, false
}

// DefaultThreshold is Ligra's switch point: go dense once the frontier plus
// its out-edges exceed m/20.
const DefaultThreshold = 20

// EdgeMap expands frontiers of one graph with one functor.
type EdgeMap struct {
	g         Graph
	f         Functor
	n         int
	m         int
	workers   int
	mode      Mode
	threshold int
	last      Mode
}

// Option configures an EdgeMap.
type Option func(*EdgeMap)

// WithWorkers bounds the goroutines used per step (0 means GOMAXPROCS).
func WithWorkers(w int) Option {
	return func(em *EdgeMap) { em.workers = w }
}

// WithMode forces a traversal mode.
func WithMode(m Mode) Option {
	return func(em *EdgeMap) { em.mode = m }
}

// WithThreshold sets the m/threshold dense switch point. Values < 1 are ignored.
func WithThreshold(t int) Option {
	return func(em *EdgeMap) {
		if t >= 1 {
			em.threshold = t
		}
	}
}

// NewEdgeMap binds a graph and functor.
func NewEdgeMap(g Graph, f Functor, opts ...Option) *EdgeMap {
	em := &EdgeMap{
		g:         g,
		f:         f,
		n:         g.NumVertices(),
		m:         g.NumEdges(),
		mode:      Auto,
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(em)
	}
	return em
}

// LastMode reports which strategy the most recent Run used.
func (em *EdgeMap) LastMode() Mode {
	return em.last
}

// Run computes the next frontier: every d with Cond(d) true that has an edge
// (s, d) from some s in vs and whose update succeeded. vs is left untouched;
// the caller still owns and releases it.
func (em *EdgeMap) Run(vs *VertexSubset) *VertexSubset {
	if vs.IsEmpty() {
		em.last = Sparse
		return NewEmpty(em.n)
	}

	// seq is packed at most once per step: auto mode needs it for the
	// out-degree sum, and the sparse branch reuses it.
	var seq []uint32
	dense := em.mode == Dense
	if em.mode == Auto {
		seq = vs.ToSeq()
		dense = em.exceedsThreshold(vs.Size(), seq)
	}

	if dense {
		em.last = Dense
		in, owned := vs.denseView()
		if owned {
			defer in.Release()
		}
		return NewDense(em.n, em.edgeMapDense(in))
	}
	em.last = Sparse
	if seq == nil {
		seq = vs.ToSeq()
	}
	return em.edgeMapSparse(seq)
}

// exceedsThreshold is Ligra's direction test: go dense once the frontier plus
// its out-edges exceed m/threshold.
func (em *EdgeMap) exceedsThreshold(size int, seq []uint32) bool {
	d := parlay_go.Reduce(len(seq), em.workers, func(c parlay_go.Chunk) int {
		sum := 0
		for _, u := range seq[c.Start:c.End] {
			sum += len(em.g.OutNeighbors(u))
		}
		return sum
	})
	return size+d > em.m/em.threshold
}

// edgeMapSparse pushes along out-edges of each frontier vertex. Several
// frontier vertices may reach the same d concurrently, so only UpdateAtomic
// is used; it lets exactly one of them add d to the output.
func (em *EdgeMap) edgeMapSparse(vertices []uint32) *VertexSubset {
	// One local output per chunk, no shared appends
	locals := make([][]uint32, parlay_go.Workers(em.workers))
	k := parlay_go.ForEachChunk(len(vertices), em.workers, func(i int, c parlay_go.Chunk) {
		var local []uint32
		for _, s := range vertices[c.Start:c.End] {
			for _, d := range em.g.OutNeighbors(s) {
				if em.f.Cond(d) && em.f.UpdateAtomic(s, d) {
					local = append(local, d)
				}
			}
		}
		locals[i] = local
	})

	total := 0
	for _, l := range locals[:k] {
		total += len(l)
	}
	// Sized once so AddVertices never reallocates; chunk order is kept
	out := NewSparse(em.n, make([]uint32, 0, total))
	for _, l := range locals[:k] {
		out.AddVertices(l)
	}
	return out
}

// edgeMapDense pulls into every vertex still satisfying Cond from its
// in-neighbors in the frontier. Each destination is handled by exactly one
// goroutine, which is what makes the non-atomic Update safe here.
func (em *EdgeMap) edgeMapDense(frontier *VertexSubset) []uint64 {
	next := make([]uint64, bitutils.Words(em.n))
	parlay_go.ParallelFor(em.n, em.workers, func(c parlay_go.Chunk) {
		for i := c.Start; i < c.End; i++ {
			d := uint32(i)
			if !em.f.Cond(d) {
				continue // already has a parent
			}
			for _, s := range em.g.InNeighbors(d) {
				if frontier.Contains(s) && em.f.Update(s, d) {
					bitutils.SetBit(next, d)
				}
				if !em.f.Cond(d) {
					break // claimed, the rest of the in-edges cannot change it
				}
			}
		}
	})
	return next
}
