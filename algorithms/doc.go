// Package algorithms implements classic graph algorithms as compositions of
// sparse kernels over an adjacency matrix.
//
// A graph with n vertices is a square *sparse.Matrix[T]: a stored entry
// A(i,j) is an edge i→j whose value is its weight. Every algorithm below
// is a short loop of masked vector-matrix products; none of them walks
// adjacency lists directly.
//
//   - Traversals
//     – BFSLevels:  q<¬levels,replace> = q lor.first A
//     – BFSParents: q<¬parents,replace> = q min.first A
//
//   - Shortest paths
//     – SSSP (Bellman-Ford): d = d min (d min.+ A), with negative-cycle detection
//
//   - Structure
//     – ConnectedComponents: min-label propagation over A and Aᵀ
//     – TriangleCount:       C<L> = L plus.times Lᵀ, then a plus reduction
//
// All functions accept functional options (WithContext, WithLogger,
// WithMaxIterations, WithMaxDepth, OnLevel). Cancellation is checked
// between iterations. Progress is logged at V(1) through the configured
// logr.Logger, and the same logger is handed to every kernel so V(2)
// kernel traces appear alongside.
package algorithms
