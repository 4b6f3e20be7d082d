package dfs

import (
	"fmt"

	"github.com/arvoslab/grava/core"
)

// walker carries the state of one DFS execution.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// Run performs depth-first search on g. In single-source mode (default) it
// starts from source; with WithFullTraversal it additionally restarts from
// every still-unvisited vertex in insertion order, producing a spanning
// forest.
//
// Returns ErrNilGraph for a nil graph, ErrSourceNotFound when the source is
// absent in single-source mode, the context error on cancellation, or any
// error produced by a hook.
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	if o.FullTraversal {
		// Start from source first when given, then sweep the remainder.
		if source != "" && g.HasVertex(source) {
			if err := w.descend(source, 0); err != nil {
				return nil, err
			}
		}
		for _, v := range g.Vertices() {
			if !w.res.Visited[v] {
				if err := w.descend(v, 0); err != nil {
					return nil, err
				}
			}
		}
	} else if err := w.descend(source, 0); err != nil {
		return nil, err
	}

	return w.res, nil
}

// descend visits id at the given depth and recurses into unvisited
// neighbors, honoring cancellation, the depth limit, filters, and hooks.
func (w *walker) descend(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// First visitation: record order and depth immediately (pre-order).
	w.res.Visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit at %q: %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
		}
		for _, e := range edges {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(e.To) {
				continue
			}
			if w.res.Visited[e.To] {
				continue
			}
			w.res.Parent[e.To] = id
			if err = w.descend(e.To, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit at %q: %w", id, err)
		}
	}

	return nil
}
