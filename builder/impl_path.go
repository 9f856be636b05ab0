// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Allocates n vertices as one block; emits (i-1)→i for i=1..n-1.
//   - Undirected mode also stores i→(i-1).
//
// Complexity:
//   - Time: O(n). Space: O(n) triplets.
//
// Determinism:
//   - Emission order is increasing i; weights follow cfg.rng/weightFn.

package builder

import "fmt"

func buildPath(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}

		base := el.addVertices(n)
		for i := 1; i < n; i++ {
			el.addEdge(cfg, base+i-1, base+i, cfg.weight())
		}

		return nil
	}
}
