package bfs

import (
	"fmt"

	"ligra_bfs_go/ligra"
	"ligra_bfs_go/logger"
	"ligra_bfs_go/metrics"
	"ligra_bfs_go/workers"
)

// Option configures a BFS via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// Options holds the tunables of one BFS.
type Options struct {
	// Workers is the number of initialization workers and the goroutine
	// bound of each frontier expansion. 0 means GOMAXPROCS.
	Workers int

	// Pin binds each initialization worker to its own CPU.
	Pin bool

	// Pinner overrides the platform CPU pinner.
	Pinner workers.Pinner

	// Mode forces sparse or dense expansion; Auto switches per level.
	Mode ligra.Mode

	// Threshold is the m/Threshold dense switch point for Auto mode.
	Threshold int

	Logger  logger.Logger
	Metrics *metrics.Registry

	err error
}

// DefaultOptions returns pinned workers, one per GOMAXPROCS, automatic
// mode switching at Ligra's threshold, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Workers:   0,
		Pin:       true,
		Mode:      ligra.Auto,
		Threshold: ligra.DefaultThreshold,
		Logger:    logger.NewNoopLogger(),
	}
}

// WithWorkers sets the worker count; negative counts are a violation.
func WithWorkers(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Workers = w
	}
}

// WithPinning enables or disables CPU pinning of initialization workers.
func WithPinning(pin bool) Option {
	return func(o *Options) { o.Pin = pin }
}

// WithPinner replaces the platform pinner.
func WithPinner(p workers.Pinner) Option {
	return func(o *Options) {
		if p != nil {
			o.Pinner = p
		}
	}
}

// WithMode forces a traversal mode.
func WithMode(m ligra.Mode) Option {
	return func(o *Options) {
		switch m {
		case ligra.Auto, ligra.Sparse, ligra.Dense:
			o.Mode = m
		default:
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, m)
		}
	}
}

// WithDenseThreshold sets the dense switch divisor; it must be >= 1.
func WithDenseThreshold(t int) Option {
	return func(o *Options) {
		if t < 1 {
			o.err = fmt.Errorf("%w: threshold must be >= 1 (%d)", ErrOptionViolation, t)
			return
		}
		o.Threshold = t
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records run metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

// State is the lifecycle stage of a BFS.
type State int

const (
	Uninitialized State = iota
	Initializing
	Traversing
	Done
	// Failed is terminal after a fatal resource error.
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Traversing:
		return "traversing"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
