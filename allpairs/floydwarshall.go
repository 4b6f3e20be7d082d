package allpairs

import (
	"errors"
	"fmt"
	"math"

	"github.com/arvoslab/grava/core"
)

// Inf is the matrix sentinel for "no path". It never participates in
// arithmetic: relaxation skips any leg that is still Inf.
const Inf = int64(math.MaxInt64)

// Sentinel errors for the all-pairs engine.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("allpairs: graph is nil")

	// ErrNegativeCycle indicates a negative-weight cycle: some dist[i][i]
	// went below zero, so no shortest-path matrix exists.
	ErrNegativeCycle = errors.New("allpairs: negative-weight cycle detected")
)

// Result is the all-pairs distance table. It is a self-contained value: the
// matrix holds copies of everything it needs and stays valid after the
// source graph is gone.
type Result struct {
	// Order lists the vertex IDs indexing the matrix, in graph insertion
	// order.
	Order []string

	index map[string]int
	dist  [][]int64
}

// At returns the shortest distance from→to, or Inf when no path exists.
// Unknown vertices yield an error wrapping core.ErrVertexNotFound.
func (r *Result) At(from, to string) (int64, error) {
	i, ok := r.index[from]
	if !ok {
		return 0, fmt.Errorf("allpairs: vertex %q: %w", from, core.ErrVertexNotFound)
	}
	j, ok := r.index[to]
	if !ok {
		return 0, fmt.Errorf("allpairs: vertex %q: %w", to, core.ErrVertexNotFound)
	}

	return r.dist[i][j], nil
}

// Matrix returns a deep copy of the distance matrix, row-indexed like Order.
func (r *Result) Matrix() [][]int64 {
	out := make([][]int64, len(r.dist))
	for i, row := range r.dist {
		out[i] = make([]int64, len(row))
		copy(out[i], row)
	}

	return out
}

// FloydWarshall computes shortest distances between every pair of vertices.
//
// Steps:
//  1. Index vertices by insertion order.
//  2. Seed the matrix: Inf everywhere, direct edge weights where edges
//     exist (undirected edges seed both directions; the graph's
//     last-write-wins policy already resolved duplicates), then clamp the
//     diagonal to ≤ 0 so only a negative self-loop can survive there.
//  3. Relax through every intermediate k in fixed k → i → j order, skipping
//     any leg still at Inf.
//  4. Scan the diagonal: any negative entry fails with ErrNegativeCycle.
//
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	order := g.Vertices()
	n := len(order)
	index := make(map[string]int, n)
	for i, v := range order {
		index[v] = i
	}

	dist := make([][]int64, n)
	for i := range dist {
		dist[i] = make([]int64, n)
		for j := range dist[i] {
			dist[i][j] = Inf
		}
	}
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		dist[u][v] = e.Weight
		if !g.Directed() {
			dist[v][u] = e.Weight
		}
	}
	for i := 0; i < n; i++ {
		// A vertex reaches itself at cost 0; keep a negative self-loop,
		// it is already a negative cycle and must trip the check below.
		if dist[i][i] > 0 || dist[i][i] == Inf {
			dist[i][i] = 0
		}
	}

	var ik, kj, cand int64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik = dist[i][k]
			if ik == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				kj = dist[k][j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: dist[%s][%s] = %d", ErrNegativeCycle, order[i], order[i], dist[i][i])
		}
	}

	return &Result{Order: order, index: index, dist: dist}, nil
}
