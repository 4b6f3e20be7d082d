// Package bfs implements breadth-first search over a core.Graph.
//
// BFS explores vertices outward from a source in nondecreasing hop count:
// every vertex at depth d is visited before any vertex at depth d+1. Edge
// weights are ignored — the frontier is a plain FIFO queue — so BFS runs on
// weighted and unweighted graphs alike.
//
// The result carries the first-visitation order, a depth map (distance in
// edges from the source), and a parent map forming the BFS tree, from which
// PathTo reconstructs hop-minimal paths.
//
// Each vertex reachable from the source appears exactly once in the output;
// unreachable vertices do not appear at all. The input graph is never
// mutated.
//
// Optional behavior is configured through functional options: context
// cancellation, enqueue/dequeue/visit hooks, a depth limit, and a neighbor
// filter. All defaults are inert.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
