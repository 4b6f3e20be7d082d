// Package shortpath implements the single-source shortest-path engines:
// Dijkstra for nonnegative edge weights and Bellman-Ford for graphs that may
// carry negative weights.
//
// Both produce a Result — a distance map seeded with 0 at the source and the
// Inf sentinel everywhere else, plus a predecessor map from which PathTo
// reconstructs shortest paths. Results are independent values: the input
// graph is never mutated and never referenced after the call returns.
//
// Choosing an engine:
//
//   - Dijkstra: O((V+E) log V). Requires all weights ≥ 0 and verifies that
//     eagerly — a negative weight yields ErrNegativeWeight before any
//     relaxation, because silently wrong distances would otherwise go
//     unnoticed.
//   - BellmanFord: O(V·E). Accepts negative weights; a negative-weight cycle
//     reachable from the source yields ErrNegativeCycle instead of a
//     misleading partial map.
//
// On graphs whose weights are all nonnegative the two engines agree exactly.
//
// Determinism: Dijkstra's priority queue breaks equal tentative distances by
// insertion order, and neighbors relax in the graph's first-insertion order,
// so predecessor maps (and therefore reconstructed paths) are reproducible.
// Bellman-Ford's distances are order-independent by construction.
package shortpath
