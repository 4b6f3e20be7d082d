package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arvoslab/grava/bfs"
	"github.com/arvoslab/grava/dfs"
)

// newWalkCmd traverses the demo city map breadth-first or depth-first.
func newWalkCmd() *cobra.Command {
	var (
		source   string
		deep     bool
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Traverse the demo graph (BFS by default, DFS with --dfs)",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := demoCity()
			out := cmd.OutOrStdout()

			limit := maxDepth
			if limit <= 0 {
				limit = -1 // unlimited
			}

			if deep {
				logger.Debug("running DFS", "source", source, "max-depth", limit)
				res, err := dfs.Run(g, source,
					dfs.WithContext(cmd.Context()),
					dfs.WithMaxDepth(limit),
				)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "dfs from %s: %s\n", source, strings.Join(res.Order, " "))
				return nil
			}

			logger.Debug("running BFS", "source", source, "max-depth", limit)
			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if limit > 0 {
				opts = append(opts, bfs.WithMaxDepth(limit))
			}
			res, err := bfs.Run(g, source, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "bfs from %s: %s\n", source, strings.Join(res.Order, " "))
			for _, v := range res.Order {
				fmt.Fprintf(out, "  %s depth=%d\n", v, res.Depth[v])
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "A", "start vertex")
	cmd.Flags().BoolVar(&deep, "dfs", false, "walk depth-first instead of breadth-first")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding past this depth (0 = unlimited)")

	return cmd
}
