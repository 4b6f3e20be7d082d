// Package core defines the Graph and Edge types that every algorithm in
// grava consumes.
//
// A Graph is an adjacency-based structure mapping each vertex (a string ID)
// to its outgoing weighted edges. Directedness is fixed at construction via
// WithDirected; an undirected edge is stored as two mirrored adjacency
// entries backed by a single logical edge record.
//
// Build/read lifecycle:
//
//	g := core.NewGraph()                    // undirected by default
//	_ = g.AddVertex("A")
//	_ = g.AddVertex("B")
//	_ = g.AddEdge("A", "B", 3)
//
// A Graph is built once by sequential AddVertex/AddEdge calls and is then
// read-only for all algorithm invocations. All mutators and readers take the
// internal RWMutex, and every reader (Neighbors, Vertices, Edges) returns
// fresh copies — never live references into the adjacency structure — so any
// number of algorithms may run concurrently against the same built graph.
//
// Determinism: Vertices and Edges iterate in insertion order, and
// Neighbors lists a vertex's edges in the order they were first added.
// Every algorithm package in grava inherits its tie-breaking from this
// ordering.
//
// Duplicate edges: adding an edge between an already-connected pair replaces
// the stored weight (last write wins). The same single policy applies to all
// readers; no algorithm ever observes two conflicting parallel edges.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - operation referenced a vertex absent from the graph.
package core
