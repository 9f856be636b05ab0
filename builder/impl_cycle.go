// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits i→(i+1) mod n for i=0..n-1; the closing edge is (n-1)→0.
//
// Complexity: O(n) time and triplets.

package builder

import "fmt"

func buildCycle(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		base := el.addVertices(n)
		for i := 0; i < n; i++ {
			el.addEdge(cfg, base+i, base+(i+1)%n, cfg.weight())
		}

		return nil
	}
}
