// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

func TestReduce_Scalar(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 3, 4, cell[int]{0, 1, 3}, cell[int]{2, 0, 4}, cell[int]{2, 3, -1})

	var sum int
	require.NoError(t, sparse.Reduce(&sum, nil, algebra.PlusMonoid[int](), a, nil))
	require.Equal(t, 6, sum)

	// With an accumulator the result is folded into the old value.
	require.NoError(t, sparse.Reduce(&sum, plus[int](), algebra.PlusMonoid[int](), a, nil))
	require.Equal(t, 12, sum)

	var lo int
	require.NoError(t, sparse.Reduce(&lo, nil, algebra.MinMonoid[int](), mustMatrix[int](t, 2, 2), nil))
	require.Equal(t, math.MaxInt, lo, "empty reduces to the identity")

	require.ErrorIs(t, sparse.Reduce(nil, nil, algebra.PlusMonoid[int](), a, nil), sparse.ErrNullPointer)
	var zero algebra.Monoid[int]
	require.ErrorIs(t, sparse.Reduce(&sum, nil, zero, a, nil), sparse.ErrUninitializedObject)

	u := mustVector(t, 5, map[int]bool{0: true, 3: false})
	var some bool
	require.NoError(t, sparse.VectorReduce(&some, nil, algebra.LorMonoid(), u, nil))
	require.True(t, some)
	all := true
	require.NoError(t, sparse.VectorReduce(&all, nil, algebra.LandMonoid(), u, nil))
	require.False(t, all)
}

func TestReduce_Rows(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 4, 3,
		cell[int]{0, 0, 1}, cell[int]{0, 2, 5},
		cell[int]{2, 1, 7},
		cell[int]{3, 0, 2}, cell[int]{3, 1, 2}, cell[int]{3, 2, 2},
	)

	w := mustVector[int](t, 4, nil)
	require.NoError(t, sparse.ReduceMonoid(w, nil, nil, algebra.PlusMonoid[int](), a, nil))
	require.Equal(t, map[int]int{0: 6, 2: 7, 3: 6}, entriesOf(t, w), "empty row 1 yields nothing")

	w = mustVector[int](t, 4, nil)
	require.NoError(t, sparse.ReduceBinaryOp(w, nil, nil, algebra.Max[int](), a, nil))
	require.Equal(t, map[int]int{0: 5, 2: 7, 3: 2}, entriesOf(t, w))

	cols := mustVector[int](t, 3, nil)
	require.NoError(t, sparse.ReduceMonoid(cols, nil, nil, algebra.PlusMonoid[int](), a, sparse.NewDescriptor(sparse.WithTransposeA())))
	require.Equal(t, map[int]int{0: 3, 1: 9, 2: 7}, entriesOf(t, cols))

	require.ErrorIs(t, sparse.ReduceMonoid(cols, nil, nil, algebra.PlusMonoid[int](), a, nil), sparse.ErrDimensionMismatch)
}
