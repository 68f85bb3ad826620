package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// mustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func mustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func mustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// bindRunFlags binds the cobra cmd flags to the equivalent config value being managed
// by viper. This bridges the config between cobra flags and viper flags.
func bindRunFlags(command *cobra.Command) {
	defaultConfig := DefaultConfig()
	flags := command.Flags()

	flags.StringP("graph", "f", defaultConfig.Graph, "path of the input graph")
	mustBindPFlag("graph", flags.Lookup("graph"))
	mustBindEnv("graph", "LIGRA_BFS_GRAPH")

	flags.String("format", defaultConfig.Format, "graph format: bin (binary CSR, .sz for snappy) or adj (adjacency list)")
	mustBindPFlag("format", flags.Lookup("format"))
	mustBindEnv("format", "LIGRA_BFS_FORMAT")

	flags.BoolP("symmetric", "s", defaultConfig.Symmetric, "treat the graph as undirected")
	mustBindPFlag("symmetric", flags.Lookup("symmetric"))
	mustBindEnv("symmetric", "LIGRA_BFS_SYMMETRIC")

	flags.Uint32P("source", "r", defaultConfig.Source, "the BFS source vertex")
	mustBindPFlag("source", flags.Lookup("source"))
	mustBindEnv("source", "LIGRA_BFS_SOURCE")

	flags.Int("random-sources", defaultConfig.RandomSources, "run from this many random non-isolated sources instead of --source")
	mustBindPFlag("randomSources", flags.Lookup("random-sources"))
	mustBindEnv("randomSources", "LIGRA_BFS_RANDOM_SOURCES", "LIGRA_BFS_RANDOMSOURCES")

	flags.Uint64("seed", defaultConfig.Seed, "seed of the random source sampler")
	mustBindPFlag("seed", flags.Lookup("seed"))
	mustBindEnv("seed", "LIGRA_BFS_SEED")

	flags.Int("rounds", defaultConfig.Rounds, "number of times each BFS is repeated")
	mustBindPFlag("rounds", flags.Lookup("rounds"))
	mustBindEnv("rounds", "LIGRA_BFS_ROUNDS")

	flags.IntP("workers", "w", defaultConfig.Workers, "number of workers (0 = GOMAXPROCS)")
	mustBindPFlag("workers", flags.Lookup("workers"))
	mustBindEnv("workers", "LIGRA_BFS_WORKERS")

	flags.Bool("pin", defaultConfig.Pin, "pin initialization workers to CPUs")
	mustBindPFlag("pin", flags.Lookup("pin"))
	mustBindEnv("pin", "LIGRA_BFS_PIN")

	flags.String("mode", defaultConfig.Mode, "frontier expansion: auto, sparse, or dense")
	mustBindPFlag("mode", flags.Lookup("mode"))
	mustBindEnv("mode", "LIGRA_BFS_MODE")

	flags.Int("threshold", defaultConfig.Threshold, "auto mode goes dense when frontier size plus out-degree exceeds m/threshold")
	mustBindPFlag("threshold", flags.Lookup("threshold"))
	mustBindEnv("threshold", "LIGRA_BFS_THRESHOLD")

	flags.Bool("verify", defaultConfig.Verify, "check every result against a sequential BFS")
	mustBindPFlag("verify", flags.Lookup("verify"))
	mustBindEnv("verify", "LIGRA_BFS_VERIFY")

	flags.String("metrics-file", defaultConfig.MetricsFile, "write Prometheus metrics to this file when done")
	mustBindPFlag("metricsFile", flags.Lookup("metrics-file"))
	mustBindEnv("metricsFile", "LIGRA_BFS_METRICS_FILE", "LIGRA_BFS_METRICSFILE")

	flags.String("log-format", defaultConfig.Log.Format, "the log format to output logs in (json or text)")
	mustBindPFlag("log.format", flags.Lookup("log-format"))
	mustBindEnv("log.format", "LIGRA_BFS_LOG_FORMAT")

	flags.String("log-level", defaultConfig.Log.Level, "the log level to use (none, debug, info, warn, error)")
	mustBindPFlag("log.level", flags.Lookup("log-level"))
	mustBindEnv("log.level", "LIGRA_BFS_LOG_LEVEL")
}
