// Package mst implements minimum-spanning-tree construction on undirected
// weighted graphs, via Kruskal's and Prim's algorithms.
//
// Both return a Result listing the selected edges in selection order along
// with their total weight. A disconnected graph is not an error:
//
//   - Kruskal spans every component, returning a minimum spanning forest
//     with fewer than |V|-1 edges.
//   - Prim spans only the root's component, returning that component's tree.
//
// Callers detect partial coverage by comparing the number of vertices the
// result touches against the graph (Result.Spans / Result.Complete).
//
// Determinism: Kruskal sorts edges with a stable sort, so equal weights keep
// their insertion order; Prim's frontier queue breaks equal weights the same
// way. Under distinct edge weights the two algorithms produce trees of equal
// total weight (the MST is unique); with ties they may pick different but
// equally light trees.
//
// Complexity: Kruskal O(E log E + α(V)·E), Prim O(E log V).
package mst
