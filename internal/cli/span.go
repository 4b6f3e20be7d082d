package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arvoslab/grava/mst"
)

// newSpanCmd builds the minimum spanning tree of the demo cable mesh.
func newSpanCmd() *cobra.Command {
	var (
		method string
		root   string
	)

	cmd := &cobra.Command{
		Use:   "span",
		Short: "Build the minimum spanning tree of the demo graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			g := demoMesh()

			opts := []mst.Option{mst.WithRoot(root)}
			switch method {
			case "kruskal":
				opts = append(opts, mst.WithMethod(mst.MethodKruskal))
			case "prim":
				opts = append(opts, mst.WithMethod(mst.MethodPrim))
			default:
				return fmt.Errorf("unknown method %q (want kruskal or prim)", method)
			}

			res, err := mst.Compute(g, opts...)
			if err != nil {
				return err
			}
			logger.Debug("spanning tree built", "method", method, "edges", len(res.Edges))

			out := cmd.OutOrStdout()
			for _, e := range res.Edges {
				fmt.Fprintf(out, "%s-%s weight=%d\n", e.From, e.To, e.Weight)
			}
			fmt.Fprintf(out, "total=%d complete=%t\n", res.TotalWeight, res.Complete(g.VertexCount()))
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "kruskal", "algorithm: kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "prim start vertex (default: first inserted)")

	return cmd
}
