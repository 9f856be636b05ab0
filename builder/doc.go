// Package builder produces deterministic sparse adjacency matrices for
// tests, examples and benchmarks of the sparse engine and its graph
// algorithms.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMatrix[T]:    resolves options, runs constructors, loads the
//     collected edges into a *sparse.Matrix[T] in one Build call.
//   - Topology constructors (Constructor values):
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithDirected, WithLoops, WithSeed, WithRand, WithWeightFn.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//
// Every constructor appends its vertices as a fresh block after the ones
// placed by earlier constructors, so
//
//	builder.BuildMatrix[float64](nil, builder.Path(3), builder.Cycle(4))
//
// yields a 7×7 matrix holding two disconnected components. Undirected
// edges are stored in both directions; the matrix is symmetric.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical matrices.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name.
package builder
