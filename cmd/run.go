package cmd

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ligra_bfs_go/bfs"
	"ligra_bfs_go/graphutils"
	"ligra_bfs_go/ligra"
	"ligra_bfs_go/logger"
	"ligra_bfs_go/metrics"
)

// NewRunCommand returns the command that loads a graph and runs BFS on it.
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run BFS over a graph",
		Long:  "Load a graph and compute BFS parents from one or more sources.",
		RunE:  run,
		Args:  cobra.NoArgs,
	}
	bindRunFlags(cmd)
	return cmd
}

// run returns configuration and load errors to cobra, which prints them on
// stderr even when logging is off. Fatal resource errors end the process.
func run(cmd *cobra.Command, _ []string) error {
	config, err := ReadConfig()
	if err != nil {
		return err
	}

	if err := config.Validate(); err != nil {
		return err
	}

	log := logger.MustNewLogger(config.Log.Format, config.Log.Level)
	err = RunBFS(config, log, cmd.OutOrStdout())
	if errors.Is(err, bfs.ErrFatalResource) {
		cmd.PrintErrln("Error:", err)
		log.Fatal("bfs aborted", zap.Error(err))
	}
	if err != nil {
		log.Error("bfs failed", zap.Error(err))
	}
	return err
}

// RunBFS loads config.Graph and runs config.Rounds searches from each source,
// writing one summary line per search to out. A bfs.ErrFatalResource aborts
// the remaining searches.
func RunBFS(config *Config, log logger.Logger, out io.Writer) error {
	mode, ok := ligra.ParseMode(config.Mode)
	if !ok {
		return fmt.Errorf("unknown mode %q", config.Mode)
	}

	start := time.Now()
	g, err := graphutils.LoadGraph(config.Graph, config.Format, config.Symmetric)
	if err != nil {
		return fmt.Errorf("load %s: %w", config.Graph, err)
	}
	log.Info("graph loaded",
		zap.String("path", config.Graph),
		zap.Int("vertices", g.NumVertices()),
		zap.Int("edges", g.NumEdges()),
		zap.Bool("symmetric", g.Symmetric()),
		zap.Duration("elapsed", time.Since(start)))

	sources := []uint32{config.Source}
	if config.RandomSources > 0 {
		rng := rand.New(rand.NewPCG(config.Seed, config.Seed))
		sources = graphutils.PickSources(g, config.RandomSources, 1, rng)
		if len(sources) == 0 {
			return fmt.Errorf("%w: graph has no vertex with out-edges", bfs.ErrInvalidSource)
		}
	}

	var reg *metrics.Registry
	if config.MetricsFile != "" {
		reg = metrics.NewRegistry()
	}

	opts := []bfs.Option{
		bfs.WithWorkers(config.Workers),
		bfs.WithPinning(config.Pin),
		bfs.WithMode(mode),
		bfs.WithDenseThreshold(config.Threshold),
		bfs.WithLogger(log),
		bfs.WithMetrics(reg),
	}

	for _, source := range sources {
		for round := 0; round < config.Rounds; round++ {
			b := bfs.New(g, opts...)
			start := time.Now()
			parents, err := b.Compute(source)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if config.Verify {
				if err := bfs.Verify(g, source, parents); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "source %d round %d: reached %d vertices in %d levels, %.6fs\n",
				source, round, parents.Reached(), b.Levels(), elapsed.Seconds())
		}
	}

	if reg != nil {
		if err := reg.WriteToTextfile(config.MetricsFile); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
