package parlay_go

// Chunk is the half-open vertex range [Start, End) owned by one worker.
type Chunk struct {
	Start, End int
}

// Len returns the number of indices in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Chunks splits [0, n) into w contiguous, ordered, non-overlapping chunks.
// Every chunk gets n/w indices and the first n%w chunks take one more, so the
// union is exactly [0, n) even when w does not divide n. When w > n the trailing
// chunks are empty. A non-positive w is treated as 1.
func Chunks(n, w int) []Chunk {
	if w <= 0 {
		w = 1
	}
	if n < 0 {
		n = 0
	}
	// Base chunk size, and how many chunks take one extra index
	size, rem := n/w, n%w
	chunks := make([]Chunk, w)
	start := 0
	for i := range chunks {
		end := start + size
		if i < rem { // The first n%w chunks absorb the remainder
			end++
		}
		chunks[i] = Chunk{Start: start, End: end}
		start = end
	}
	return chunks
}
