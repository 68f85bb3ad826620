// Package bfs computes a breadth-first spanning forest: for every vertex
// reachable from a source, the vertex that first discovered it.
//
// The parent array is initialized by pinned workers over disjoint chunks and
// joined before the source is marked. Traversal then repeatedly expands the
// frontier with a ligra.EdgeMap whose updates claim unvisited vertices, by
// compare-and-swap when several frontier vertices may race for the same one.
package bfs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ligra_bfs_go/ligra"
	"ligra_bfs_go/logger"
	"ligra_bfs_go/workers"
)

// BFS is a single-use search over one graph.
type BFS struct {
	g      ligra.Graph
	opts   Options
	state  State
	levels int
}

// New prepares a search over g. It does no work until Compute.
func New(g ligra.Graph, opts ...Option) *BFS {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &BFS{g: g, opts: o}
}

// Compute runs a fresh BFS from source and returns its parents.
func Compute(g ligra.Graph, source uint32, opts ...Option) (*ParentStore, error) {
	return New(g, opts...).Compute(source)
}

// State returns the current lifecycle stage.
func (b *BFS) State() State {
	return b.state
}

// Levels returns the number of frontiers expanded, the source's included.
func (b *BFS) Levels() int {
	return b.levels
}

// Compute searches from source. The returned ParentStore belongs to the
// caller. A BFS can only be computed once; build a new one to search again.
func (b *BFS) Compute(source uint32) (*ParentStore, error) {
	if b.g == nil {
		return nil, ErrGraphNil
	}
	if b.opts.err != nil {
		return nil, b.opts.err
	}
	if b.state != Uninitialized {
		return nil, fmt.Errorf("%w: state %s", ErrAlreadyRun, b.state)
	}
	n := b.g.NumVertices()
	if int64(source) >= int64(n) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSource, source, n)
	}

	log := b.opts.Logger.With(zap.String("run_id", uuid.NewString()), zap.Uint32("source", source))

	b.state = Initializing
	start := time.Now()
	parents, err := b.initParents(n, log)
	if err != nil {
		b.state = Failed
		b.recordRun("fatal", 0)
		log.Error("parent initialization failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFatalResource, err)
	}
	b.recordPhase("init", time.Since(start))

	b.state = Traversing
	start = time.Now()
	parents.parents[source] = source // The root is its own parent
	b.traverse(parents, source, log)
	b.recordPhase("traverse", time.Since(start))

	b.state = Done
	reached := parents.Reached()
	b.recordRun("ok", reached)
	log.Info("bfs complete",
		zap.Int("levels", b.levels),
		zap.Int("reached", reached),
		zap.Int("vertices", n))
	return parents, nil
}

// initParents fills every slot with Unvisited using one pinned worker per
// chunk. Join is the barrier that makes those writes visible to traversal.
func (b *BFS) initParents(n int, log logger.Logger) (*ParentStore, error) {
	parents := newParentStore(n)
	h := workers.Start(workers.Config{
		Workers: b.opts.Workers,
		Pin:     b.opts.Pin,
		Pinner:  b.opts.Pinner,
		Logger:  log,
	}, n, func(d workers.Descriptor) {
		parents.Reset(d.Chunk)
	})
	if err := h.Join(); err != nil {
		return nil, err
	}
	if b.opts.Metrics != nil {
		b.opts.Metrics.InitWorkers.Set(float64(len(h.Descriptors())))
	}
	return parents, nil
}

// traverse expands the frontier until it is empty. Each frontier is released
// exactly once, right after its successor is built.
func (b *BFS) traverse(parents *ParentStore, source uint32, log logger.Logger) {
	em := ligra.NewEdgeMap(b.g, updater{parents},
		ligra.WithWorkers(b.opts.Workers),
		ligra.WithMode(b.opts.Mode),
		ligra.WithThreshold(b.opts.Threshold))

	// Level 0: the source alone
	frontier := ligra.NewSingle(b.g.NumVertices(), source)
	for !frontier.IsEmpty() {
		b.levels++
		next := em.Run(frontier) // Claims every unvisited neighbor
		frontier.Release()       // Same as "Frontier.del()"
		frontier = next

		mode := em.LastMode().String()
		if b.opts.Metrics != nil {
			b.opts.Metrics.RecordStep(mode, frontier.Size())
		}
		log.Debug("frontier expanded",
			zap.Int("level", b.levels),
			zap.String("mode", mode),
			zap.Int("frontier", frontier.Size()))
	}
	frontier.Release()
}

func (b *BFS) recordRun(status string, reached int) {
	if b.opts.Metrics != nil {
		b.opts.Metrics.RecordRun(status, b.levels, reached)
	}
}

func (b *BFS) recordPhase(phase string, d time.Duration) {
	if b.opts.Metrics != nil {
		b.opts.Metrics.RecordPhase(phase, d)
	}
}
