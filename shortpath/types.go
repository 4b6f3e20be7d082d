// Package shortpath: shared result type, the Inf sentinel, and sentinel
// errors for both shortest-path engines.
package shortpath

import (
	"errors"
	"fmt"
	"math"

	"github.com/arvoslab/grava/core"
)

// Inf is the distance sentinel for unreachable vertices. It is distinct from
// any finite sum of edge weights the engines will ever produce: relaxation
// only ever starts from a finite distance.
const Inf = int64(math.MaxInt64)

// Sentinel errors shared by Dijkstra and BellmanFord.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("shortpath: graph is nil")

	// ErrEmptySource indicates the source vertex ID is empty.
	ErrEmptySource = errors.New("shortpath: source vertex ID is empty")

	// ErrSourceNotFound indicates the source vertex is absent from the graph.
	// It wraps core.ErrVertexNotFound for module-wide errors.Is checks.
	ErrSourceNotFound = fmt.Errorf("shortpath: source vertex not found: %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates a negative edge weight was found in a graph
	// handed to Dijkstra. The check runs before any relaxation.
	ErrNegativeWeight = errors.New("shortpath: negative edge weight")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the
	// source; shortest paths through it are undefined, so no distance map is
	// returned.
	ErrNegativeCycle = errors.New("shortpath: negative-weight cycle detected")
)

// Result holds single-source shortest-path distances and predecessors.
//
// Dist covers every vertex of the graph; unreachable vertices keep Inf and
// have no Prev entry. Prev[v] == u means the shortest path to v arrives via
// u; the source has no Prev entry. Both maps are owned by the caller.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps vertex ID → shortest distance from Source (Inf if unreachable).
	Dist map[string]int64

	// Prev maps vertex ID → predecessor on a shortest path.
	Prev map[string]string
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]

	return ok && d != Inf
}

// PathTo reconstructs the shortest path from the source to dest by walking
// the predecessor chain. Returns an error if dest is unknown or unreachable.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("shortpath: no path from %q to %q", r.Source, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// newResult allocates a Result seeded per the distance-map contract:
// every vertex at Inf, the source at 0, no predecessors.
func newResult(g *core.Graph, source string) *Result {
	vertices := g.Vertices()
	r := &Result{
		Source: source,
		Dist:   make(map[string]int64, len(vertices)),
		Prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		r.Dist[v] = Inf
	}
	r.Dist[source] = 0

	return r
}

// validate runs the checks shared by both engines, in a fixed order.
func validate(g *core.Graph, source string) error {
	if g == nil {
		return ErrNilGraph
	}
	if source == "" {
		return ErrEmptySource
	}
	if !g.HasVertex(source) {
		return ErrSourceNotFound
	}

	return nil
}
