package bfs

import (
	"fmt"

	"github.com/arvoslab/grava/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates the mutable state of one BFS run.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// Run performs breadth-first search on g from source, applying any number of
// functional Options.
//
// Returns ErrNilGraph for a nil graph, ErrSourceNotFound when source is
// absent, ErrOptionViolation for a bad option, the context error on
// cancellation, or any error produced by the OnVisit hook. On success the
// Result contains exactly the vertices reachable from source within the
// configured depth limit.
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Source: source,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(source, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, records its parent, fires OnEnqueue,
// and appends it to the frontier. Marking on enqueue (not on dequeue)
// guarantees each vertex enters the queue at most once.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop drains the FIFO frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit at %q: %w", item.id, err)
		}

		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor of item within the depth
// limit. Edge weights are deliberately ignored.
func (w *walker) expand(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		// The vertex came out of the graph itself, so this cannot happen on
		// a read-only graph; surface it rather than hide a misuse.
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, e := range edges {
		if !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, item.id)
		}
	}

	return nil
}
