// Package workers runs one initialization task per vertex chunk, each on its
// own OS thread pinned to a CPU, and joins them behind a single barrier.
package workers

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ligra_bfs_go/logger"
	"ligra_bfs_go/parlay_go"
)

var (
	// ErrPin is returned by Join when a worker could not be pinned to its CPU.
	ErrPin = errors.New("workers: cpu pinning failed")

	// ErrPinUnsupported is returned by pinners on platforms without thread affinity.
	ErrPinUnsupported = errors.New("workers: cpu pinning not supported on this platform")

	// ErrWorkerPanic is returned by Join when a task panicked.
	ErrWorkerPanic = errors.New("workers: worker panicked")
)

// Pinner binds OS threads to CPUs.
type Pinner interface {
	// CPUs lists the CPUs the process may run on, in increasing order.
	CPUs() ([]int, error)
	// Pin binds the calling OS thread to cpu.
	Pin(cpu int) error
}

// Config describes one pool launch.
type Config struct {
	// Workers is the number of worker goroutines; values < 1 mean GOMAXPROCS.
	Workers int
	// Pin locks each worker to an OS thread bound to one CPU. Leaving it
	// false runs workers unpinned.
	Pin bool
	// Pinner overrides the platform pinner.
	Pinner Pinner
	Logger logger.Logger
}

// Descriptor is what a single worker is told about its share of the work.
type Descriptor struct {
	Index int
	Count int
	Chunk parlay_go.Chunk
	// CPU is the CPU the worker is pinned to, or -1 when unpinned.
	CPU int
}

// Handle tracks one launch of workers.
type Handle struct {
	group *errgroup.Group
	descs []Descriptor
}

// Start partitions [0, n) into cfg.Workers chunks and launches one worker per
// chunk running task. It never blocks on the workers; call Join before anything
// else touches the memory the tasks write.
func Start(cfg Config, n int, task func(Descriptor)) *Handle {
	count := parlay_go.Workers(cfg.Workers)
	log := cfg.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	pinner := cfg.Pinner
	if pinner == nil {
		pinner = DefaultPinner()
	}

	var cpus []int
	var cpusErr error
	if cfg.Pin {
		cpus, cpusErr = pinner.CPUs()
		if cpusErr == nil && len(cpus) == 0 {
			cpusErr = errors.New("empty cpu set")
		}
	}
	if cfg.Pin && cpusErr == nil && count > len(cpus) {
		// Pinning still happens, but workers i and i+len(cpus) share a core
		log.Warn("more workers than cpus in the affinity mask, cpus will be shared",
			zap.Int("workers", count),
			zap.Int("cpus", len(cpus)))
	}

	h := &Handle{group: new(errgroup.Group), descs: make([]Descriptor, count)}
	// One worker per chunk, including empty ones, so every worker is pinned and joined
	for i, c := range parlay_go.Chunks(n, count) {
		d := Descriptor{Index: i, Count: count, Chunk: c, CPU: -1}
		if cfg.Pin && cpusErr == nil {
			d.CPU = cpus[i%len(cpus)]
		}
		h.descs[i] = d

		h.group.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: worker %d: %v", ErrWorkerPanic, d.Index, r)
				}
			}()
			if cfg.Pin {
				if cpusErr != nil {
					return fmt.Errorf("%w: worker %d: %w", ErrPin, d.Index, cpusErr)
				}
				// Never unlocked: the thread carrying this affinity mask is
				// discarded when the goroutine returns.
				runtime.LockOSThread()
				if err := pinner.Pin(d.CPU); err != nil {
					return fmt.Errorf("%w: worker %d cpu %d: %w", ErrPin, d.Index, d.CPU, err)
				}
			}
			log.Debug("worker started",
				zap.Int("worker", d.Index),
				zap.Int("cpu", d.CPU),
				zap.Int("start", d.Chunk.Start),
				zap.Int("end", d.Chunk.End))
			task(d)
			return nil
		})
	}
	return h
}

// Join blocks until every worker has returned. All writes made by the tasks
// happen before Join returns. The first pin failure or task panic is returned.
func (h *Handle) Join() error {
	return h.group.Wait()
}

// Descriptors returns the per-worker descriptors of this launch.
func (h *Handle) Descriptors() []Descriptor {
	return h.descs
}
