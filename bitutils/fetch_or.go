package bitutils

import (
	"math/bits"
	"sync/atomic"
)

// FetchOr atomically ORs mask into *addr and returns the previous value.
// Concurrent callers setting bits in the same word never lose each other's bits.
func FetchOr(addr *uint64, mask uint64) uint64 {
	for {
		old := atomic.LoadUint64(addr)
		if old|mask == old { // nothing new to set
			return old
		}
		if atomic.CompareAndSwapUint64(addr, old, old|mask) {
			return old
		}
	}
}

// Words returns the number of uint64 words needed to hold n bits.
func Words(n int) int {
	return (n + 63) >> 6
}

// SetBit sets bit i of words and reports whether this call flipped it from 0 to 1.
// Safe to call concurrently on the same word.
func SetBit(words []uint64, i uint32) bool {
	mask := uint64(1) << (i & 63)
	return FetchOr(&words[i>>6], mask)&mask == 0
}

// TestBit reports whether bit i of words is set (plain read).
func TestBit(words []uint64, i uint32) bool {
	return words[i>>6]&(uint64(1)<<(i&63)) != 0
}

// Count returns the number of set bits in words[lo:hi].
func Count(words []uint64, lo, hi int) int {
	c := 0
	for _, w := range words[lo:hi] {
		c += bits.OnesCount64(w)
	}
	return c
}
