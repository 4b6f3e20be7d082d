package mst

import (
	"sort"

	"github.com/arvoslab/grava/core"
	"github.com/arvoslab/grava/dsu"
)

// Kruskal computes a minimum spanning forest of g.
//
// Steps:
//  1. Collect all edges, discarding self-loops (they can never join
//     two components).
//  2. Stable-sort by weight ascending, so equal-weight edges keep
//     their insertion order.
//  3. Scan the sorted list, accepting an edge whenever its endpoints
//     lie in different union-find sets.
//  4. Stop early once |V|-1 edges are in, the ceiling for a single tree.
//
// On a disconnected graph the scan simply runs out of joinable edges and
// the result is the minimum spanning forest, one tree per component.
func Kruskal(g *core.Graph) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	sets := dsu.NewFrom(vertices)

	candidates := make([]core.Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		candidates = append(candidates, e)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Weight < candidates[j].Weight
	})

	res := &Result{Edges: make([]core.Edge, 0, max(0, len(vertices)-1))}
	for _, e := range candidates {
		if len(res.Edges) == len(vertices)-1 {
			break
		}
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			return nil, err
		}
		if !merged {
			continue // endpoints already connected, edge would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
	}
	return res, nil
}
