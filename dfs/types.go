// Package dfs: options, errors, and the result type for depth-first search.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/arvoslab/grava/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is absent.
	// It wraps core.ErrVertexNotFound for module-wide errors.Is checks.
	ErrSourceNotFound = fmt.Errorf("dfs: source vertex not found: %w", core.ErrVertexNotFound)
)

// Option configures DFS behavior.
type Option func(*Options)

// Options holds configurable parameters for a DFS run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs on vertex discovery (pre-order).
	// A non-nil error aborts the traversal.
	OnVisit func(id string) error

	// OnExit, if non-nil, runs after a vertex's descendants are fully
	// explored (post-order). A non-nil error aborts the traversal.
	OnExit func(id string) error

	// MaxDepth, if non-negative, bounds the recursion depth; 0 visits only
	// the source. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for each candidate neighbor;
	// returning false skips it.
	FilterNeighbor func(id string) bool

	// FullTraversal restarts DFS from every unvisited vertex (in insertion
	// order), so disconnected components are covered as a forest.
	FullTraversal bool
}

// DefaultOptions returns inert defaults: background context, no hooks,
// no depth limit, no filtering, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
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

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth bounds the recursion depth; negative values mean no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every component, not just the source's.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result is the outcome of a DFS traversal.
type Result struct {
	// Order lists vertices in first-visitation (pre-order) order.
	Order []string

	// Depth maps each visited vertex to its recursion depth from its root.
	Depth map[string]int

	// Parent maps each visited non-root vertex to the vertex it was
	// discovered from; the links form a spanning tree per component.
	Parent map[string]string

	// Visited marks every vertex the traversal reached.
	Visited map[string]bool
}
