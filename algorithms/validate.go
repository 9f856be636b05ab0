// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gblas/sparse"
)

// squareDim returns n for an n×n adjacency matrix.
func squareDim[T comparable](method string, a *sparse.Matrix[T]) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	nr, nc := a.Dims()
	if nr == 0 {
		// Dims reports (0,0) only for a matrix that bypassed NewMatrix.
		return 0, fmt.Errorf("%s: %w: %w", method, ErrNilMatrix, sparse.ErrUninitializedObject)
	}
	if nr != nc {
		return 0, fmt.Errorf("%s: A is %dx%d: %w", method, nr, nc, ErrNotSquare)
	}

	return nr, nil
}

func checkSource(method string, src, n int) error {
	if src < 0 || src >= n {
		return fmt.Errorf("%s: source %d not in [0,%d): %w", method, src, n, ErrSourceOutOfRange)
	}

	return nil
}
