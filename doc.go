// Package gblas is an in-memory engine for sparse linear algebra over
// user-chosen algebras, in the spirit of the GraphBLAS: graph algorithms are
// written as matrix and vector products over semirings, with masks and
// accumulators controlling exactly which outputs change.
//
// What is inside:
//
//	algebra/    — unary/binary operators, monoids, semirings and a named registry
//	sparse/     — Matrix and Vector containers, mask views, the Descriptor and
//	              every kernel (MxM, VxM, MxV, element-wise, apply, reduce,
//	              extract, assign, transpose, Kronecker) plus a gonum bridge
//	builder/    — deterministic adjacency fixtures (path, cycle, star, grid…)
//	algorithms/ — BFS levels/parents, Bellman-Ford SSSP, connected components,
//	              triangle counting, all written as sparse kernels
//	examples/   — small runnable programs
//
// Guarantees:
//
//   - Every kernel is atomic: on error the output is unchanged.
//   - Containers are safe for concurrent use; kernels lock participants in
//     a global order, so overlapping calls never deadlock.
//   - Errors are sentinel values classified as usage or execution errors.
//
// Quick example, one BFS step as a masked product:
//
//	q<¬visited, replace> = q lor.first A
//
//	go get github.com/katalvlaran/gblas
package gblas
