package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ligra_bfs_go/graphutils"
)

// NewInfoCommand returns the command that prints a binary graph's header.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <graph.bin>",
		Short: "Print the header of a binary CSR graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := graphutils.ReadHeader(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vertices: %d\n", h.N)
			fmt.Fprintf(out, "edges:    %d\n", h.M)
			fmt.Fprintf(out, "sizes:    %d (expected %d)\n", h.Sizes, h.ExpectedSizes())
			return nil
		},
	}
}
