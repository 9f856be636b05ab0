// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 of the block is the center; spokes run center→leaf.

package builder

import "fmt"

func buildStar(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}

		center := el.addVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			el.addEdge(cfg, center, center+leaf, cfg.weight())
		}

		return nil
	}
}
