package graphutils

import "math/rand/v2"

// PickSources returns up to k distinct BFS sources drawn in random order
// from vertices whose out-degree is at least minDegree.
func PickSources(g *Graph, k, minDegree int, rng *rand.Rand) []uint32 {
	n := g.NumVertices()
	var ord []int
	if rng != nil {
		ord = rng.Perm(n)
	} else {
		ord = rand.Perm(n)
	}

	sources := make([]uint32, 0, k)
	for _, v := range ord {
		if len(sources) == k {
			break
		}
		if g.OutDegree(uint32(v)) >= minDegree {
			sources = append(sources, uint32(v))
		}
	}
	return sources
}
