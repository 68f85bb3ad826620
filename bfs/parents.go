package bfs

import (
	"fmt"
	"math"
	"sync/atomic"

	"ligra_bfs_go/parlay_go"
)

// Unvisited marks a vertex with no parent yet. No vertex id can equal it.
const Unvisited uint32 = math.MaxUint32

// ParentStore holds one parent id per vertex. After initialization a slot
// changes at most once, from Unvisited to the id of the vertex that claimed it.
type ParentStore struct {
	parents []uint32
}

func newParentStore(n int) *ParentStore {
	return &ParentStore{parents: make([]uint32, n)}
}

// Len returns the number of vertices.
func (p *ParentStore) Len() int {
	return len(p.parents)
}

// Reset marks every vertex in c as Unvisited. Chunks handed to different
// goroutines must not overlap.
func (p *ParentStore) Reset(c parlay_go.Chunk) {
	slots := p.parents[c.Start:c.End]
	for i := range slots {
		slots[i] = Unvisited
	}
}

// Parent returns v's parent, or Unvisited.
func (p *ParentStore) Parent(v uint32) uint32 {
	return atomic.LoadUint32(&p.parents[v])
}

// IsActive reports whether d is still unvisited and may be claimed.
func (p *ParentStore) IsActive(d uint32) bool {
	return atomic.LoadUint32(&p.parents[d]) == Unvisited
}

// Claim sets d's parent to s if d is unvisited. The read and the write are
// separate, so the caller must be the only goroutine touching d.
func (p *ParentStore) Claim(s, d uint32) bool {
	if p.parents[d] == Unvisited {
		p.parents[d] = s
		return true
	}
	return false
}

// ClaimAtomic sets d's parent to s with a single compare-and-swap. Among any
// number of concurrent claims on an unvisited d exactly one returns true.
func (p *ParentStore) ClaimAtomic(s, d uint32) bool {
	return atomic.CompareAndSwapUint32(&p.parents[d], Unvisited, s)
}

// Snapshot returns a copy of the parent array.
func (p *ParentStore) Snapshot() []uint32 {
	out := make([]uint32, len(p.parents))
	copy(out, p.parents)
	return out
}

// Reached counts vertices with a parent, the source included.
func (p *ParentStore) Reached() int {
	return parlay_go.Reduce(len(p.parents), 0, func(c parlay_go.Chunk) int {
		k := 0
		for _, v := range p.parents[c.Start:c.End] {
			if v != Unvisited {
				k++
			}
		}
		return k
	})
}

// PathTo follows parent pointers from dest back to the root and returns the
// path root → dest.
func (p *ParentStore) PathTo(dest uint32) ([]uint32, error) {
	if int(dest) >= len(p.parents) || p.parents[dest] == Unvisited {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := []uint32{dest}
	for cur := dest; ; {
		next := p.parents[cur]
		if next == cur {
			break
		}
		if int(next) >= len(p.parents) {
			return nil, fmt.Errorf("%w: dangling parent of %d", ErrVerification, cur)
		}
		path = append(path, next)
		if len(path) > len(p.parents) {
			return nil, fmt.Errorf("%w: parent cycle through %d", ErrVerification, dest)
		}
		cur = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// updater adapts a ParentStore to the engine's update contract.
type updater struct {
	p *ParentStore
}

func (u updater) Cond(d uint32) bool { return u.p.IsActive(d) }

func (u updater) Update(s, d uint32) bool { return u.p.Claim(s, d) }

func (u updater) UpdateAtomic(s, d uint32) bool { return u.p.ClaimAtomic(s, d) }
