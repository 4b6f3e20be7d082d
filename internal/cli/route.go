package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arvoslab/grava/shortpath"
)

// newRouteCmd finds the cheapest route between two junctions of the demo
// city map.
func newRouteCmd() *cobra.Command {
	var (
		from   string
		to     string
		engine string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route between two vertices of the demo graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := demoCity()

			var (
				res *shortpath.Result
				err error
			)
			switch engine {
			case "dijkstra":
				res, err = shortpath.Dijkstra(g, from)
			case "bellman-ford":
				res, err = shortpath.BellmanFord(g, from)
			default:
				return fmt.Errorf("unknown engine %q (want dijkstra or bellman-ford)", engine)
			}
			if err != nil {
				return err
			}
			logger.Debug("distances computed", "engine", engine, "source", from)

			if !res.Reachable(to) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is unreachable from %s\n", to, from)
				return nil
			}
			path, err := res.PathTo(to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: cost=%d via %s\n",
				from, to, res.Dist[to], strings.Join(path, " "))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "A", "start vertex")
	cmd.Flags().StringVar(&to, "to", "E", "destination vertex")
	cmd.Flags().StringVar(&engine, "engine", "dijkstra", "shortest-path engine: dijkstra or bellman-ford")

	return cmd
}
