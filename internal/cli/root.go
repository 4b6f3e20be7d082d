// Package cli implements the grava demo command line.
//
// Each subcommand runs one of the library's algorithms over a small fixed
// graph and prints the result: walk (BFS/DFS), route (Dijkstra or
// Bellman-Ford), span (Kruskal or Prim) and matrix (Floyd-Warshall).
// All commands accept --verbose (-v) for debug logging; the logger travels
// through the command context.
package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the grava command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "grava",
		Short: "grava runs graph algorithm demos on built-in example graphs",
		Long: `grava demonstrates the library's traversals, shortest-path engines and
spanning-tree builders on small built-in graphs, printing each result in a
terminal-friendly form.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newWalkCmd())
	root.AddCommand(newRouteCmd())
	root.AddCommand(newSpanCmd())
	root.AddCommand(newMatrixCmd())

	return root
}
