package cmd

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"ligra_bfs_go/ligra"
)

// LogConfig selects the log encoding and level.
type LogConfig struct {
	// Format is "json" or "text".
	Format string `validate:"oneof=json text"`

	// Level is debug, info, warn, error, fatal, or none.
	Level string `validate:"oneof=none debug info warn error fatal"`
}

// Config is the configuration of a run.
type Config struct {
	// Graph is the path of the input graph.
	Graph string `validate:"required"`

	// Format is "bin" for binary CSR (snappy framed if the name ends in .sz)
	// or "adj" for a text adjacency list.
	Format string `validate:"oneof=bin adj"`

	// Symmetric marks the graph as undirected; its transpose is itself.
	Symmetric bool

	// Source is the BFS source, ignored when RandomSources > 0.
	Source uint32

	// RandomSources runs from this many randomly drawn non-isolated sources.
	RandomSources int `validate:"min=0"`

	// Seed seeds the source sampler.
	Seed uint64

	// Rounds repeats each BFS.
	Rounds int `validate:"min=1"`

	// Workers is the worker count; 0 means GOMAXPROCS.
	Workers int `validate:"min=0"`

	// Pin binds initialization workers to CPUs.
	Pin bool

	// Mode is auto, sparse, or dense.
	Mode string `validate:"oneof=auto sparse dense"`

	// Threshold is the dense switch divisor of auto mode.
	Threshold int `validate:"min=1"`

	// Verify checks every result against a sequential BFS.
	Verify bool

	// MetricsFile, when set, receives the Prometheus text exposition.
	MetricsFile string

	Log LogConfig
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Format:    "bin",
		Source:    0,
		Seed:      1,
		Rounds:    1,
		Workers:   0,
		Pin:       true,
		Mode:      ligra.Auto.String(),
		Threshold: ligra.DefaultThreshold,
		Log: LogConfig{
			Format: "text",
			Level:  "info",
		},
	}
}

var validate = validator.New()

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ReadConfig merges config.yaml, environment and flags over DefaultConfig.
func ReadConfig() (*Config, error) {
	config := DefaultConfig()

	viper.SetTypeByDefaultValue(true)
	err := viper.ReadInConfig()
	if err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}
