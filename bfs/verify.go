package bfs

import (
	"fmt"

	"ligra_bfs_go/ligra"
)

// Verify checks that parents is a BFS tree of g rooted at source:
//   - the source is its own parent;
//   - every vertex unreachable from source is Unvisited;
//   - every other reachable vertex d has a parent p with an edge (p, d) and
//     dist(p) + 1 == dist(d), so parent chains strictly approach the source.
func Verify(g ligra.Graph, source uint32, parents *ParentStore) error {
	n := g.NumVertices()
	if parents.Len() != n {
		return fmt.Errorf("%w: %d parents for %d vertices", ErrVerification, parents.Len(), n)
	}
	if int64(source) >= int64(n) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSource, source, n)
	}
	if p := parents.Parent(source); p != source {
		return fmt.Errorf("%w: source %d has parent %d", ErrVerification, source, p)
	}

	dist := SequentialDistances(g, source)
	for i := 0; i < n; i++ {
		d := uint32(i)
		if d == source {
			continue
		}
		p := parents.Parent(d)
		if dist[d] == Unvisited {
			if p != Unvisited {
				return fmt.Errorf("%w: unreachable vertex %d has parent %d", ErrVerification, d, p)
			}
			continue
		}
		if p == Unvisited {
			return fmt.Errorf("%w: reachable vertex %d has no parent", ErrVerification, d)
		}
		if int(p) >= n {
			return fmt.Errorf("%w: vertex %d has out-of-range parent %d", ErrVerification, d, p)
		}
		if dist[p]+1 != dist[d] {
			return fmt.Errorf("%w: vertex %d at depth %d has parent %d at depth %d", ErrVerification, d, dist[d], p, dist[p])
		}
		if !hasEdge(g, p, d) {
			return fmt.Errorf("%w: parent edge (%d, %d) not in graph", ErrVerification, p, d)
		}
	}
	return nil
}

// edgeQuerier is implemented by graphs with their own edge lookup, such as
// graphutils.Graph.
type edgeQuerier interface {
	HasEdge(u, v uint32) bool
}

func hasEdge(g ligra.Graph, u, v uint32) bool {
	if q, ok := g.(edgeQuerier); ok {
		return q.HasEdge(u, v)
	}
	for _, w := range g.OutNeighbors(u) {
		if w == v {
			return true
		}
	}
	return false
}
