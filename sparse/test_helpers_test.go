// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Build small deterministic fixtures from triplets in one line.
//   - Re-check the storage invariants after every mutating call.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// cell is one (row, col, value) triplet of a fixture.
type cell[T any] struct {
	r, c int
	v    T
}

// mustMatrix builds an nr×nc matrix holding cells, failing the test on error.
func mustMatrix[T comparable](t testing.TB, nr, nc int, cells ...cell[T]) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.NewMatrix[T](nr, nc)
	require.NoError(t, err)
	for _, x := range cells {
		require.NoError(t, m.SetElement(x.r, x.c, x.v))
	}

	return m
}

// mustVector builds a vector of the given size holding vals at their keys.
func mustVector[T comparable](t testing.TB, size int, vals map[int]T) *sparse.Vector[T] {
	t.Helper()
	v, err := sparse.NewVector[T](size)
	require.NoError(t, err)
	for i, x := range vals {
		require.NoError(t, v.SetElement(i, x))
	}

	return v
}

// cellsOf returns every stored entry of m as cells, in storage order.
func cellsOf[T comparable](t testing.TB, m *sparse.Matrix[T]) []cell[T] {
	t.Helper()
	require.NoError(t, sparse.CheckInvariants(m))
	rows, cols, vals, err := m.ExtractTuples()
	require.NoError(t, err)
	out := make([]cell[T], len(rows))
	for k := range rows {
		out[k] = cell[T]{r: rows[k], c: cols[k], v: vals[k]}
	}

	return out
}

// entriesOf returns every stored entry of v keyed by index.
func entriesOf[T comparable](t testing.TB, v *sparse.Vector[T]) map[int]T {
	t.Helper()
	require.NoError(t, sparse.CheckVectorInvariants(v))
	idx, vals, err := v.ExtractTuples()
	require.NoError(t, err)
	out := make(map[int]T, len(idx))
	for k := range idx {
		out[idx[k]] = vals[k]
	}

	return out
}

// randomMatrix fills an nr×nc int matrix with density p of values in [1,9].
func randomMatrix(t testing.TB, rng *rand.Rand, nr, nc int, p float64) *sparse.Matrix[int] {
	t.Helper()
	m, err := sparse.NewMatrix[int](nr, nc)
	require.NoError(t, err)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			if rng.Float64() < p {
				require.NoError(t, m.SetElement(r, c, 1+rng.Intn(9)))
			}
		}
	}

	return m
}

// plus is the accumulator most tests use.
func plus[T algebra.Number]() *algebra.BinaryOp[T, T, T] {
	op := algebra.Plus[T]()
	return &op
}
