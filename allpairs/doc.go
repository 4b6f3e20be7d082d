// Package allpairs implements the Floyd-Warshall all-pairs shortest-path
// engine.
//
// FloydWarshall builds a |V|×|V| distance matrix indexed by the graph's
// vertex insertion order: dist[i][i] = 0, dist[i][j] = direct edge weight
// where one exists, Inf otherwise. It then relaxes every (i,j) pair through
// every intermediate vertex k in the fixed loop order k → i → j, so the
// accumulation order — and therefore the result on tied paths — is
// deterministic.
//
// Negative edge weights are accepted. After the relaxation a negative value
// on the diagonal proves a negative-weight cycle; the whole matrix is then
// unreliable and the call fails with ErrNegativeCycle.
//
// The O(V³) time / O(V²) space cost is the deliberate price of all-pairs
// completeness: one call answers every (source, destination) query, where
// the single-source engines would need |V| runs.
package allpairs
