// Package cmd contains the commands of the ligra-bfs binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the commands read.
const EnvPrefix = "LIGRA_BFS"

// NewRootCommand enables all children commands to read flags from CLI flags,
// environment variables prefixed with LIGRA_BFS, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/ligra-bfs", "$HOME/.ligra-bfs", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	cmd := &cobra.Command{
		Use:   "ligra-bfs",
		Short: "Parallel breadth-first search over large graphs",
		Long: `Parallel breadth-first search over large graphs.

ligra-bfs loads a graph in binary CSR or adjacency list form and computes, for
every vertex reachable from a source, its parent in a BFS tree. Frontiers are
expanded with a Ligra-style edge map that switches between sparse (push) and
dense (pull) traversal.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(NewRunCommand(), NewInfoCommand(), NewConvertCommand())
	return cmd
}
