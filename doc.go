// Package grava is an in-memory graph toolkit: a thread-safe core graph
// plus the classic algorithms, each in its own small package.
//
// What's inside:
//
//   - core/      — the Graph itself: string vertex IDs, int64 edge weights,
//     directed or undirected, safe for concurrent use
//   - bfs/, dfs/ — traversals with hooks, depth limits and neighbor filters
//   - shortpath/ — single-source shortest paths: Dijkstra and Bellman-Ford
//   - allpairs/  — Floyd-Warshall all-pairs distance matrix
//   - mst/       — minimum spanning trees: Kruskal and Prim
//   - pqueue/    — generic min-priority queue with stable FIFO tie-breaking
//   - dsu/       — disjoint-set union with path compression
//
// Design notes:
//
//   - Errors are values: every package exports sentinel errors and wraps
//     them with %w, so errors.Is works across package boundaries.
//   - Determinism: vertices, edges and neighbor lists iterate in insertion
//     order, and equal priorities resolve first-in-first-out, so every
//     algorithm is reproducible run to run.
//   - Algorithms never mutate their input graph.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/arvoslab/grava
package grava
