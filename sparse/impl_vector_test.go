// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

func TestVector_Basics(t *testing.T) {
	t.Parallel()

	_, err := sparse.NewVector[int](0)
	require.ErrorIs(t, err, sparse.ErrInvalidValue)

	v := mustVector(t, 6, map[int]int{4: 40, 1: 10})
	require.Equal(t, 6, v.Size())
	require.Equal(t, 2, v.Nvals())

	idx, vals, err := v.ExtractTuples()
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, idx)
	require.Equal(t, []int{10, 40}, vals)

	require.NoError(t, v.SetElement(4, 41))
	x, err := v.ExtractElement(4)
	require.NoError(t, err)
	require.Equal(t, 41, x)
	require.Equal(t, 2, v.Nvals())

	_, err = v.ExtractElement(0)
	require.ErrorIs(t, err, sparse.ErrNoValue)
	_, err = v.ExtractElement(6)
	require.ErrorIs(t, err, sparse.ErrInvalidIndex)
	require.ErrorIs(t, v.SetElement(-1, 0), sparse.ErrInvalidIndex)

	require.NoError(t, v.RemoveElement(1))
	require.NoError(t, v.RemoveElement(1))
	require.Equal(t, map[int]int{4: 41}, entriesOf(t, v))
	require.Equal(t, "Vector[6 nvals=1]{4:41}", v.String())
}

func TestVector_BuildDup(t *testing.T) {
	t.Parallel()

	for _, vals := range [][]float64{{1.5, 2.25}, {2.25, 1.5}} {
		v := mustVector[float64](t, 5, nil)
		require.NoError(t, v.Build([]int{2, 2}, vals, 2, algebra.Plus[float64]()))
		require.Equal(t, map[int]float64{2: 3.75}, entriesOf(t, v))
	}

	v := mustVector[int](t, 3, nil)
	require.ErrorIs(t, v.Build([]int{0, 3}, []int{1, 1}, 2, algebra.Plus[int]()), sparse.ErrIndexOutOfBounds)
	require.Zero(t, v.Nvals())
	require.NoError(t, v.SetElement(0, 1))
	require.ErrorIs(t, v.Build([]int{1}, []int{1}, 1, algebra.Plus[int]()), sparse.ErrOutputNotEmpty)
}

func TestVector_ResizeDupClear(t *testing.T) {
	t.Parallel()

	v := mustVector(t, 10, map[int]int{1: 1, 7: 7, 9: 9})
	d, err := v.Dup()
	require.NoError(t, err)

	require.NoError(t, v.Resize(8))
	require.Equal(t, map[int]int{1: 1, 7: 7}, entriesOf(t, v))
	require.Equal(t, 3, d.Nvals(), "dup is independent")

	require.NoError(t, v.SetElementDup(7, 3, algebra.Plus[int]()))
	require.Equal(t, map[int]int{1: 1, 7: 10}, entriesOf(t, v))

	p, err := v.Pattern()
	require.NoError(t, err)
	require.Equal(t, map[int]bool{1: true, 7: true}, entriesOf(t, p))

	require.NoError(t, v.Clear())
	require.Zero(t, v.Nvals())
	require.Equal(t, 8, v.Size())
}
