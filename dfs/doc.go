// Package dfs implements depth-first search over a core.Graph.
//
// DFS descends along each branch before backtracking, visiting a neighbor
// only if it has not been visited yet. The result records vertices in
// first-visitation (pre-order) order together with a parent map; across a
// full-graph traversal the parent links form a spanning forest.
//
// Neighbors are explored in the graph's deterministic first-insertion order,
// so the visitation order is reproducible for a given build sequence.
//
// Options mirror the bfs package: context cancellation, pre-order (OnVisit)
// and post-order (OnExit) hooks, a depth limit, a neighbor filter, and
// WithFullTraversal to restart from every unvisited vertex and cover
// disconnected components.
//
// Complexity: O(V + E) time, O(V) memory (recursion depth bounded by the
// longest simple path).
package dfs
