package mst

import (
	"fmt"

	"github.com/arvoslab/grava/core"
	"github.com/arvoslab/grava/pqueue"
)

// Prim computes the minimum spanning tree of root's component.
//
// An empty root defaults to the first vertex in insertion order. Vertices
// outside root's component are unreachable and simply absent from the
// result; use Result.Complete to detect that.
//
// The frontier is a min-priority queue keyed by the lightest known weight
// connecting each outside vertex to the growing tree. Instead of a
// decrease-key operation, a cheaper entry is re-inserted and stale entries
// are skipped on extraction (their key no longer matches the best known
// weight).
func Prim(g *core.Graph, root string) (*Result, error) {
	if err := validate(g); err != nil {
		return nil, err
	}

	vertices := g.Vertices()
	res := &Result{Edges: make([]core.Edge, 0, max(0, len(vertices)-1))}
	if len(vertices) == 0 {
		if root != "" {
			return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
		}
		return res, nil
	}
	if root == "" {
		root = vertices[0]
	} else if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}

	inTree := make(map[string]struct{}, len(vertices))
	best := make(map[string]int64, len(vertices))      // lightest weight reaching each frontier vertex
	bestFrom := make(map[string]string, len(vertices)) // tree endpoint of that lightest edge

	pq := pqueue.NewMin[string](len(vertices))
	best[root] = 0
	pq.Insert(root, 0)

	for !pq.IsEmpty() {
		u, w, err := pq.ExtractMin()
		if err != nil {
			return nil, err
		}
		if _, ok := inTree[u]; ok {
			continue
		}
		if w != best[u] {
			continue // stale entry, a lighter connection was found later
		}
		inTree[u] = struct{}{}
		if u != root {
			res.Edges = append(res.Edges, core.Edge{From: bestFrom[u], To: u, Weight: w})
			res.TotalWeight += w
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, e := range neighbors {
			v := e.To
			if _, ok := inTree[v]; ok {
				continue
			}
			if cur, seen := best[v]; !seen || e.Weight < cur {
				best[v] = e.Weight
				bestFrom[v] = u
				pq.Insert(v, e.Weight)
			}
		}
	}
	return res, nil
}
