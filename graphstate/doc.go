// Package graphstate implements the dense-adjacency graph representation
// driven by the MCMC engine: construction, the four canonical generators
// (complete/line/random/empty), the reversible single-vertex re-randomization
// move with exact rollback, and component analysis.
//
// A Graph is fixed-size: n, directedness, and loop-allowance are immutable
// once constructed. Only the adjacency bits, edge count, and the cached
// component statistics change over the lifetime of a Graph.
//
// Undirected storage is canonical and strictly lower-triangular: A[i][j] is
// only ever set for i>j (plus the diagonal when loops are allowed). This
// removes double-counting and gives every undirected edge a single
// canonical storage cell. Directed storage treats A[i][j] and A[j][i]
// independently.
package graphstate
