// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMatrix(bopts, cons...). Resolves cfg, runs cons in order,
//     then loads the collected edge list into a fresh n×n matrix with one Build call.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical matrices.
//   - Safety: never panic; constructors return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// Constructor appends one vertex block to the edge list and emits its
// edges. Constructors MUST:
//   - validate their own parameters and return sentinel errors (wrapped);
//   - only reference vertices they allocated via addVertices;
//   - draw weights through cfg.weight() so WithWeightFn applies uniformly.
type Constructor func(el *edgeList, cfg builderConfig) error

// BuildMatrix runs cons in order against one shared edge list and returns
// the resulting adjacency matrix with element type T. Weights produced by
// the WeightFn are converted with T(w). Repeated coordinates keep the last
// written weight.
//
// Errors:
//   - ErrConstructFailed when a constructor is nil or nothing was placed;
//   - any sentinel returned by a constructor, wrapped with its name;
//   - ErrConstructFailed wrapping the sparse error if loading fails.
func BuildMatrix[T algebra.Number](bopts []BuilderOption, cons ...Constructor) (*sparse.Matrix[T], error) {
	cfg := newBuilderConfig(bopts...)
	el := &edgeList{}
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("%s: constructor #%d is nil: %w", MethodBuildMatrix, i, ErrConstructFailed)
		}
		if err := c(el, cfg); err != nil {
			return nil, err
		}
	}
	if el.n == 0 {
		return nil, fmt.Errorf("%s: no vertices placed: %w", MethodBuildMatrix, ErrConstructFailed)
	}

	m, err := sparse.NewMatrix[T](el.n, el.n)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuildMatrix, err, ErrConstructFailed)
	}
	vals := make([]T, el.edges())
	for i, w := range el.w {
		vals[i] = T(w)
	}
	if err = m.Build(el.rows, el.cols, vals, len(vals), algebra.Second[T, T]()); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", MethodBuildMatrix, err, ErrConstructFailed)
	}

	return m, nil
}

// Path returns a Constructor for an n-vertex chain 0–1–…–(n−1).
func Path(n int) Constructor { return buildPath(n) }

// Cycle returns a Constructor for an n-vertex ring.
func Cycle(n int) Constructor { return buildCycle(n) }

// Star returns a Constructor with center 0 joined to n−1 leaves.
func Star(n int) Constructor { return buildStar(n) }

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor { return buildComplete(n) }

// Grid returns a Constructor for a rows×cols 4-neighborhood lattice.
func Grid(rows, cols int) Constructor { return buildGrid(rows, cols) }

// RandomSparse returns a Constructor sampling each candidate edge with
// probability p.
func RandomSparse(n int, p float64) Constructor { return buildRandomSparse(n, p) }
