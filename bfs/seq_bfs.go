package bfs

import "ligra_bfs_go/ligra"

// SequentialDistances runs a plain FIFO BFS from source and returns the hop
// distance of every vertex, Unvisited for the unreachable ones. It is the
// reference Verify checks parallel results against.
func SequentialDistances(g ligra.Graph, source uint32) []uint32 {
	n := g.NumVertices()
	D := make([]uint32, n)
	for i := range D {
		D[i] = Unvisited
	}
	if int64(source) >= int64(n) {
		return D
	}

	D[source] = 0
	queue := make([]uint32, 0, n)
	queue = append(queue, source)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		for _, v := range g.OutNeighbors(u) {
			if D[v] == Unvisited {
				D[v] = D[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return D
}
