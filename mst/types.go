package mst

import (
	"errors"
	"fmt"

	"github.com/arvoslab/grava/core"
)

// Sentinel errors returned by Compute, Kruskal and Prim.
var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("mst: nil graph")

	// ErrDirectedGraph is returned when the input graph is directed.
	// Spanning trees are defined on undirected graphs only.
	ErrDirectedGraph = errors.New("mst: directed graph")

	// ErrRootNotFound is returned by Prim when the requested root vertex
	// does not exist in the graph. It wraps core.ErrVertexNotFound.
	ErrRootNotFound = fmt.Errorf("mst: root vertex not found: %w", core.ErrVertexNotFound)

	// ErrUnknownMethod is returned by Compute for an unrecognized Method.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// Method selects the algorithm Compute dispatches to.
type Method int

const (
	// MethodKruskal builds a spanning forest by global edge sort + union-find.
	MethodKruskal Method = iota
	// MethodPrim grows a single tree from a root vertex via a frontier queue.
	MethodPrim
)

// String implements fmt.Stringer for logging and errors.
func (m Method) String() string {
	switch m {
	case MethodKruskal:
		return "kruskal"
	case MethodPrim:
		return "prim"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Options configures Compute.
type Options struct {
	// Method picks the algorithm. Defaults to MethodKruskal.
	Method Method

	// Root is Prim's start vertex. Empty means the first vertex in
	// insertion order. Ignored by Kruskal.
	Root string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: Kruskal, no explicit root.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal}
}

// WithMethod selects the algorithm Compute runs.
func WithMethod(m Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot sets Prim's start vertex.
func WithRoot(id string) Option {
	return func(o *Options) { o.Root = id }
}

// Result holds the edges selected into the spanning tree (or forest) in
// selection order, plus their total weight.
type Result struct {
	// Edges are the selected edges, in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of the selected edges' weights.
	TotalWeight int64
}

// Spans returns the number of distinct vertices the selected edges touch.
// Isolated vertices contribute no edges and are not counted.
func (r *Result) Spans() int {
	seen := make(map[string]struct{}, 2*len(r.Edges))
	for _, e := range r.Edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	return len(seen)
}

// Complete reports whether the result is a single tree covering all n
// vertices, i.e. exactly n-1 edges were selected. n is the vertex count of
// the source graph. Graphs with fewer than two vertices are trivially
// complete.
func (r *Result) Complete(n int) bool {
	if n < 2 {
		return len(r.Edges) == 0
	}
	return len(r.Edges) == n-1
}

// Compute validates the graph and dispatches to the configured algorithm.
func Compute(g *core.Graph, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, o.Root)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, o.Method)
	}
}

// validate performs the checks shared by both algorithms.
func validate(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrDirectedGraph
	}
	return nil
}
