// Package bfs: options, errors, and the result type for breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/arvoslab/grava/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	// It wraps core.ErrVertexNotFound for module-wide errors.Is checks.
	ErrSourceNotFound = fmt.Errorf("bfs: source vertex not found: %w", core.ErrVertexNotFound)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid option
// (such as a negative depth limit) is recorded and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a BFS run.
type Options struct {
	// Ctx allows cancellation and deadlines; defaults to context.Background().
	Ctx context.Context

	// OnEnqueue runs when a vertex joins the frontier, with its depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue runs when a vertex leaves the frontier, before visiting.
	OnDequeue func(id string, depth int)

	// OnVisit runs when a vertex is visited. A non-nil error aborts the
	// search and propagates to the caller.
	OnVisit func(id string, depth int) error

	// MaxDepth, when > 0, stops exploring beyond that many hops.
	// Zero means no limit.
	MaxDepth int

	// FilterNeighbor skips the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns inert defaults: background context, no hooks,
// no depth limit, no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a hook to run when a vertex is enqueued.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a hook to run when a vertex is dequeued.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a hook to run on each visit; returning an error
// aborts the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search depth.
//
//	d > 0  — explore at most d hops from the source
//	d == 0 — no limit
//	d < 0  — invalid, surfaces as ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the outcome of a BFS traversal.
type Result struct {
	// Source is the vertex the search started from.
	Source string

	// Order lists vertices in first-visitation order, source first.
	Order []string

	// Depth maps each visited vertex to its distance in edges from the source.
	Depth map[string]int

	// Parent maps each visited vertex (except the source) to its predecessor
	// in the BFS tree.
	Parent map[string]string
}

// PathTo reconstructs the hop-minimal path from the source to dest by
// walking the parent map. Returns an error if dest was never reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// Reverse into source→dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
