// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex base + r*cols + c (row-major).
//   - 4-neighborhood: right edge (r,c)→(r,c+1) and down edge (r,c)→(r+1,c).
//   - Directed mode stores the mirrored edge too, with its own weight, so
//     every lattice step is traversable in both directions.
//
// Complexity:
//   - Time: O(rows*cols). Triplets: 2*(rows*(cols-1) + (rows-1)*cols).
//
// Determinism:
//   - Row-major scan; for each cell right edge first, then down edge.

package builder

import "fmt"

func buildGrid(rows, cols int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}

		base := el.addVertices(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }

		link := func(u, v int) {
			el.addEdge(cfg, u, v, cfg.weight())
			if cfg.directed {
				el.addEdge(cfg, v, u, cfg.weight())
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					link(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
