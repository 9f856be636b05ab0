// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j).
//   - Diagonal (i,i) is a candidate only under WithLoops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required only when 0 < p < 1 (else ErrNeedRandSource).
//     p=0 emits nothing; p=1 emits every candidate without consuming the RNG.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials. Space: O(emitted) triplets.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ fixed matrix.

package builder

import "fmt"

func buildRandomSparse(n int, p float64) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		// The negated form also rejects NaN.
		if !(p >= MinProbability && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: p=%.6f: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		base := el.addVertices(n)
		if p == MinProbability {
			return nil
		}

		keep := func() bool {
			if p == MaxProbability {
				return true
			}

			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			start := i
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if keep() {
					el.addEdge(cfg, base+i, base+j, cfg.weight())
				}
			}
		}

		return nil
	}
}
