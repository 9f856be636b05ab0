// SPDX-License-Identifier: MIT

package algorithms

import "errors"

// Sentinel errors returned by the algorithms in this package.
var (
	// ErrNilMatrix is returned when the adjacency matrix is nil or was not
	// created by sparse.NewMatrix.
	ErrNilMatrix = errors.New("algorithms: adjacency matrix is nil")

	// ErrNotSquare is returned when the adjacency matrix is not n×n.
	ErrNotSquare = errors.New("algorithms: adjacency matrix is not square")

	// ErrSourceOutOfRange is returned when the source vertex is not in [0,n).
	ErrSourceOutOfRange = errors.New("algorithms: source vertex out of range")

	// ErrNegativeCycle is returned by SSSP when a negative-weight cycle is
	// reachable from the source.
	ErrNegativeCycle = errors.New("algorithms: negative cycle reachable from source")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("algorithms: invalid option supplied")
)
