package shortpath

import (
	"fmt"

	"github.com/arvoslab/grava/core"
	"github.com/arvoslab/grava/pqueue"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions, checked in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be non-empty (ErrEmptySource).
//  3. g must contain source (ErrSourceNotFound).
//  4. No edge may carry a negative weight (ErrNegativeWeight). This scan
//     runs before any relaxation: with a negative weight present the
//     algorithm would not fail loudly, it would quietly return wrong
//     distances.
//
// The engine keeps a min-queue of (vertex, tentative distance) pairs and
// uses lazy deletion in place of decrease-key: relaxing a vertex inserts a
// fresh queue entry, and an entry whose popped key exceeds the current best
// distance is stale and skipped. Equal tentative distances are extracted in
// insertion order (the queue's FIFO tie-break), which fixes the predecessor
// choice between equally short paths.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g *core.Graph, source string) (*Result, error) {
	if err := validate(g, source); err != nil {
		return nil, err
	}

	// Eager weight check over every edge, reachable or not: a usage error,
	// not a property of the chosen source.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newResult(g, source)
	pq := pqueue.NewMin[string](g.VertexCount())
	pq.Insert(source, 0)

	for !pq.IsEmpty() {
		u, d, err := pq.ExtractMin()
		if err != nil {
			// Unreachable: emptiness was just checked.
			return nil, err
		}
		// Stale entry: a shorter path to u was settled after this entry
		// was queued. Lazy deletion drops it here.
		if d > r.Dist[u] {
			continue
		}

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("shortpath: dijkstra neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			next := d + e.Weight
			if next < r.Dist[e.To] {
				r.Dist[e.To] = next
				r.Prev[e.To] = u
				pq.Insert(e.To, next)
			}
		}
	}

	return r, nil
}
