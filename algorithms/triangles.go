// SPDX-License-Identifier: MIT

package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// TriangleCount returns the number of triangles in the undirected graph
// underlying A. Edge direction, weights and self-loops are ignored.
//
// L is the strictly lower-triangular pattern of A ∪ Aᵀ. Then
//
//	C<L> = L plus.times Lᵀ
//
// counts, for every edge (i,j) with i > j, the common neighbors k < j, so
// each triangle k < j < i is counted exactly once and the plus reduction of
// C is the answer.
func TriangleCount[T comparable](a *sparse.Matrix[T], opts ...Option) (int64, error) {
	const method = "TriangleCount"
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	n, err := squareDim(method, a)
	if err != nil {
		return 0, err
	}
	if err = o.cancelled(method); err != nil {
		return 0, err
	}

	l, err := lowerPattern(a, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	c, err := sparse.NewMatrix[int64](n, n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	desc := sparse.NewDescriptor(sparse.WithTransposeB(), sparse.WithStructuralMask(), sparse.WithLogger(o.Log))
	if err = sparse.MxM(c, l.StructureMask(), nil, algebra.PlusTimes[int64](), l, l, desc); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}

	var total int64
	if err = sparse.Reduce(&total, nil, algebra.PlusMonoid[int64](), c, sparse.NewDescriptor(sparse.WithLogger(o.Log))); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	o.Log.V(1).Info("triangles counted", "algorithm", method, "edges", l.Nvals(), "triangles", total)

	return total, nil
}

// lowerPattern folds every off-diagonal entry of A onto the strictly lower
// triangle as a 1.
func lowerPattern[T comparable](a *sparse.Matrix[T], n int) (*sparse.Matrix[int64], error) {
	rows, cols, _, err := a.ExtractTuples()
	if err != nil {
		return nil, err
	}
	lr := make([]int, 0, len(rows))
	lc := make([]int, 0, len(rows))
	for k := range rows {
		r, c := rows[k], cols[k]
		switch {
		case r > c:
			lr, lc = append(lr, r), append(lc, c)
		case c > r:
			lr, lc = append(lr, c), append(lc, r)
		}
	}
	ones := make([]int64, len(lr))
	for k := range ones {
		ones[k] = 1
	}

	l, err := sparse.NewMatrix[int64](n, n)
	if err != nil {
		return nil, err
	}
	// Both orientations of an undirected edge land on the same cell.
	if err = l.Build(lr, lc, ones, len(ones), algebra.Second[int64, int64]()); err != nil {
		return nil, err
	}

	return l, nil
}
