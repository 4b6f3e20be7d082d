// Package core: Graph method implementations.
//
// Mutators (AddVertex, AddEdge) take the write lock; readers take the read
// lock and return fresh copies so callers never hold references into the
// adjacency structure.
package core

import "fmt"

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty; adding an existing vertex is a
// no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertexSet[id]; exists {
		return nil
	}
	g.vertexSet[id] = struct{}{}
	g.vertexOrder = append(g.vertexOrder, id)
	g.adj[id] = make(map[string]int64)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertexSet[id]

	return exists
}

// AddEdge connects from→to with the given weight.
//
// Both endpoints must already exist; an absent endpoint yields
// ErrVertexNotFound (the graph never creates vertices implicitly).
// Adding an edge between an already-connected pair replaces the stored
// weight: last write wins, for all readers alike. On an undirected graph the
// edge is mirrored into both adjacency lists but counts as one logical edge.
// Self-loops are stored as a single entry.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertexSet[from]; !ok {
		return fmt.Errorf("core: add edge %s→%s: endpoint %q: %w", from, to, from, ErrVertexNotFound)
	}
	if _, ok := g.vertexSet[to]; !ok {
		return fmt.Errorf("core: add edge %s→%s: endpoint %q: %w", from, to, to, ErrVertexNotFound)
	}

	key := g.key(from, to)
	if idx, exists := g.edgeIdx[key]; exists {
		// Last write wins: refresh the record in place, keeping its
		// position in the insertion order.
		g.edges[idx] = Edge{From: from, To: to, Weight: weight}
	} else {
		g.edgeIdx[key] = len(g.edges)
		g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	}

	// Record first-insertion order per direction, then set the weight.
	if _, seen := g.adj[from][to]; !seen {
		g.adjOrder[from] = append(g.adjOrder[from], to)
	}
	g.adj[from][to] = weight

	if !g.directed && from != to {
		if _, seen := g.adj[to][from]; !seen {
			g.adjOrder[to] = append(g.adjOrder[to], from)
		}
		g.adj[to][from] = weight
	}

	return nil
}

// HasEdge reports whether an edge from→to exists. On an undirected graph the
// direction of the query does not matter.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Neighbors returns the outgoing edges of vertex id as a fresh slice of Edge
// copies, in first-insertion order. Each copy is oriented From=id, so on an
// undirected graph both endpoints see the edge pointing away from themselves.
// An absent vertex yields ErrVertexNotFound; a vertex with no outgoing edges
// yields an empty slice. The slice is restartable: every call rebuilds it, and
// mutating it never touches the graph.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertexSet[id]; !ok {
		return nil, fmt.Errorf("core: neighbors of %q: %w", id, ErrVertexNotFound)
	}

	order := g.adjOrder[id]
	out := make([]Edge, 0, len(order))
	for _, to := range order {
		out = append(out, Edge{From: id, To: to, Weight: g.adj[id][to]})
	}

	return out, nil
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Edges returns one copy per logical edge, in insertion order. Undirected
// edges appear once, with the orientation of their most recent AddEdge call.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weight reports the stored weight of the edge from→to.
// Returns ErrVertexNotFound if either endpoint is absent and false if the
// endpoints exist but no such edge does.
func (g *Graph) Weight(from, to string) (int64, bool, error) {
	if from == "" || to == "" {
		return 0, false, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertexSet[from]; !ok {
		return 0, false, fmt.Errorf("core: weight of %s→%s: %w", from, to, ErrVertexNotFound)
	}
	if _, ok := g.vertexSet[to]; !ok {
		return 0, false, fmt.Errorf("core: weight of %s→%s: %w", from, to, ErrVertexNotFound)
	}
	w, ok := g.adj[from][to]

	return w, ok, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	return g.directed
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// EdgeCount returns the number of logical edges (an undirected edge counts
// once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// key computes the identity of a logical edge. Undirected endpoints are
// normalized so A—B and B—A collide.
func (g *Graph) key(from, to string) pairKey {
	if g.directed || from <= to {
		return pairKey{a: from, b: to}
	}

	return pairKey{a: to, b: from}
}
