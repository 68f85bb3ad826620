package parlay_go

import "math/bits"

// PackIndex returns, in increasing order, the indices of the set bits among
// the first n bits of words (parlay::pack_index over a bitset).
// Each worker packs a word-aligned range into a local slice; locals are
// concatenated in chunk order so the result stays sorted.
func PackIndex(words []uint64, n int) []uint32 {
	nw := (n + 63) >> 6 // Number of words holding the n bits
	locals := make([][]uint32, Workers(0))
	k := ForEachChunk(nw, 0, func(ci int, c Chunk) {
		var local []uint32
		for wi := c.Start; wi < c.End; wi++ {
			w := words[wi]
			for w != 0 {
				// Lowest set bit; bits past n are padding
				idx := wi<<6 + bits.TrailingZeros64(w)
				if idx >= n {
					break
				}
				local = append(local, uint32(idx))
				w &= w - 1 // Clear the lowest set bit
			}
		}
		locals[ci] = local
	})

	// Concatenate in chunk order
	total := 0
	for _, l := range locals[:k] {
		total += len(l)
	}
	result := make([]uint32, 0, total)
	for _, l := range locals[:k] {
		result = append(result, l...)
	}
	return result
}
