// Package core: type declarations, sentinel errors, and the NewGraph
// constructor. Method implementations live in graph.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// Algorithm packages wrap this sentinel so errors.Is works across the module.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is a weighted connection between two vertices.
//
// For a directed graph the edge runs From→To. For an undirected graph the
// record is logically symmetric; Neighbors always orients the copy it hands
// out so that From is the queried vertex. Weight may be negative — whether
// negative weights are legal is decided by the consuming algorithm
// (Bellman-Ford accepts them, Dijkstra rejects them eagerly).
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge.
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected makes every edge one-way (From→To). The default graph is
// undirected. Directedness cannot change after construction.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// pairKey identifies a logical edge. For undirected graphs the endpoints are
// stored in lexicographic order so that A—B and B—A resolve to the same key.
type pairKey struct {
	a, b string
}

// Graph is the in-memory adjacency structure shared by all grava algorithms.
//
// Internal layout:
//
//	adj[from][to]      — current weight of the (from,to) entry (last write wins)
//	adjOrder[from]     — neighbor IDs of from, in first-insertion order
//	edges / edgeIdx    — one record per logical edge, in insertion order
//	vertexOrder        — vertex IDs in insertion order
//
// mu guards every field; readers take the read lock and copy out.
type Graph struct {
	mu sync.RWMutex

	directed bool

	vertexSet   map[string]struct{}
	vertexOrder []string

	adj      map[string]map[string]int64
	adjOrder map[string][]string

	edges   []Edge
	edgeIdx map[pairKey]int
}

// NewGraph creates an empty Graph. By default the graph is undirected;
// pass WithDirected for one-way edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertexSet: make(map[string]struct{}),
		adj:       make(map[string]map[string]int64),
		adjOrder:  make(map[string][]string),
		edgeIdx:   make(map[pairKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
