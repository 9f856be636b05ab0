// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 places one isolated vertex.
//   - Undirected: one weight per unordered pair {i,j}, i<j, stored both ways.
//   - Directed: every ordered pair (i,j), i≠j, with its own weight.
//   - Never emits diagonal entries.
//
// Complexity:
//   - Time: O(n²). Space: n(n-1) triplets in both modes.

package builder

import "fmt"

func buildComplete(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}

		base := el.addVertices(n)
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				el.addEdge(cfg, base+i, base+j, cfg.weight())
			}
		}

		return nil
	}
}
