package shortpath

import (
	"fmt"

	"github.com/arvoslab/grava/core"
)

// BellmanFord computes shortest distances from source to every vertex of g,
// accepting negative edge weights.
//
// The engine relaxes every edge for up to |V|-1 rounds; a round that changes
// nothing ends the loop early, since no later round could either. One final
// detection pass follows: if any edge would still relax, a negative-weight
// cycle is reachable from the source and the call fails with
// ErrNegativeCycle rather than returning distances that understate true
// costs.
//
// Distances are independent of the order edges are relaxed within a round.
// On an undirected graph each edge participates in both directions, so any
// negative undirected edge forms a two-vertex negative cycle.
//
// Complexity: O(V·E) time, O(V + E) memory.
func BellmanFord(g *core.Graph, source string) (*Result, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}

	r := newResult(g, source)
	edges := relaxationList(g)

	rounds := g.VertexCount() - 1
	for i := 0; i < rounds; i++ {
		updated := false
		for _, e := range edges {
			if relax(r, e) {
				updated = true
			}
		}
		if !updated {
			// Fixed point: further rounds cannot change anything, and the
			// detection pass below will find nothing to relax either.
			break
		}
	}

	// Detection pass: any remaining improvement proves a reachable
	// negative-weight cycle.
	for _, e := range edges {
		if r.Dist[e.From] != Inf && r.Dist[e.From]+e.Weight < r.Dist[e.To] {
			return nil, fmt.Errorf("%w: still relaxing %s→%s weight=%d",
				ErrNegativeCycle, e.From, e.To, e.Weight)
		}
	}

	return r, nil
}

// relax applies one edge relaxation; reports whether it improved a distance.
// Relaxation never starts from Inf, which keeps the sentinel out of
// arithmetic.
func relax(r *Result, e core.Edge) bool {
	if r.Dist[e.From] == Inf {
		return false
	}
	next := r.Dist[e.From] + e.Weight
	if next >= r.Dist[e.To] {
		return false
	}
	r.Dist[e.To] = next
	r.Prev[e.To] = e.From

	return true
}

// relaxationList flattens the graph into directed relaxation entries:
// directed edges as-is, undirected edges once per direction.
func relaxationList(g *core.Graph) []core.Edge {
	edges := g.Edges()
	if g.Directed() {
		return edges
	}
	out := make([]core.Edge, 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e)
		if e.From != e.To {
			out = append(out, core.Edge{From: e.To, To: e.From, Weight: e.Weight})
		}
	}

	return out
}
