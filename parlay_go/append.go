package parlay_go

// Append copies src into dst (len(dst) >= len(src)) in parallel chunks.
// Helper for "parlay::append", called by VertexSubset.AddVertices when growing a sparse frontier.
func Append(src, dst []uint32) {
	n := len(src)
	if n == 0 { // Nothing to copy
		return
	}
	// Each chunk copies its own slice of src into the same positions of dst
	ParallelFor(n, 0, func(c Chunk) {
		copy(dst[c.Start:c.End], src[c.Start:c.End])
	})
}
