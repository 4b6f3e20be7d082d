package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arvoslab/grava/allpairs"
)

// newMatrixCmd prints the all-pairs distance table of the demo tariff graph.
func newMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the all-pairs shortest-path matrix of the demo graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := demoTariff()

			res, err := allpairs.FloydWarshall(g)
			if err != nil {
				return err
			}
			logger.Debug("all-pairs distances computed", "vertices", len(res.Order))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 4, 0, 2, ' ', 0)
			fmt.Fprint(w, "from\\to")
			for _, v := range res.Order {
				fmt.Fprintf(w, "\t%s", v)
			}
			fmt.Fprintln(w)
			dist := res.Matrix()
			for i, from := range res.Order {
				fmt.Fprint(w, from)
				for j := range res.Order {
					if dist[i][j] == allpairs.Inf {
						fmt.Fprint(w, "\t∞")
						continue
					}
					fmt.Fprintf(w, "\t%d", dist[i][j])
				}
				fmt.Fprintln(w)
			}
			return w.Flush()
		},
	}
	return cmd
}
