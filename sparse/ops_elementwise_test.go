// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

func ewiseFixtures(t *testing.T) (a, b *sparse.Matrix[int]) {
	a = mustMatrix(t, 3, 3, cell[int]{0, 0, 1}, cell[int]{0, 2, 2}, cell[int]{2, 1, 3})
	b = mustMatrix(t, 3, 3, cell[int]{0, 2, 10}, cell[int]{1, 1, 20}, cell[int]{2, 1, 30})

	return a, b
}

func TestEWiseAdd_Union(t *testing.T) {
	t.Parallel()

	a, b := ewiseFixtures(t)
	want := []cell[int]{{0, 0, 1}, {0, 2, 12}, {1, 1, 20}, {2, 1, 33}}

	c := mustMatrix[int](t, 3, 3)
	require.NoError(t, sparse.EWiseAdd(c, nil, nil, algebra.Plus[int](), a, b, nil))
	require.Equal(t, want, cellsOf(t, c))

	c = mustMatrix[int](t, 3, 3)
	require.NoError(t, sparse.EWiseAddMonoid(c, nil, nil, algebra.PlusMonoid[int](), a, b, nil))
	require.Equal(t, want, cellsOf(t, c))

	c = mustMatrix[int](t, 3, 3)
	require.NoError(t, sparse.EWiseAddSemiring(c, nil, nil, algebra.MinPlus[int](), a, b, nil))
	require.Equal(t, []cell[int]{{0, 0, 1}, {0, 2, 2}, {1, 1, 20}, {2, 1, 3}}, cellsOf(t, c))
}

func TestEWiseMult_Intersection(t *testing.T) {
	t.Parallel()

	a, b := ewiseFixtures(t)

	c := mustMatrix[int](t, 3, 3)
	require.NoError(t, sparse.EWiseMultMonoid(c, nil, nil, algebra.TimesMonoid[int](), a, b, nil))
	require.Equal(t, []cell[int]{{0, 2, 20}, {2, 1, 90}}, cellsOf(t, c))

	c = mustMatrix[int](t, 3, 3)
	require.NoError(t, sparse.EWiseMultSemiring(c, nil, nil, algebra.PlusTimes[int](), a, b, nil))
	require.Equal(t, []cell[int]{{0, 2, 20}, {2, 1, 90}}, cellsOf(t, c))

	// Output domain differs from the inputs'.
	lt := mustMatrix[bool](t, 3, 3)
	require.NoError(t, sparse.EWiseMult(lt, nil, nil, algebra.LessThan[int](), a, b, nil))
	require.Equal(t, []cell[bool]{{0, 2, true}, {2, 1, true}}, cellsOf(t, lt))
}

func TestEWise_TransposedOperand(t *testing.T) {
	t.Parallel()

	a := mustMatrix(t, 2, 3, cell[int]{0, 2, 1})
	b := mustMatrix(t, 3, 2, cell[int]{2, 0, 5})
	c := mustMatrix[int](t, 2, 3)
	require.NoError(t, sparse.EWiseAdd(c, nil, nil, algebra.Plus[int](), a, b, sparse.NewDescriptor(sparse.WithTransposeB())))
	require.Equal(t, []cell[int]{{0, 2, 6}}, cellsOf(t, c))
	require.Equal(t, []cell[int]{{2, 0, 5}}, cellsOf(t, b), "input untouched")

	require.ErrorIs(t, sparse.EWiseAdd(c, nil, nil, algebra.Plus[int](), a, b, nil), sparse.ErrDimensionMismatch)
}

func TestVectorEWise(t *testing.T) {
	t.Parallel()

	u := mustVector(t, 6, map[int]int{0: 1, 2: 2, 5: 3})
	v := mustVector(t, 6, map[int]int{2: 10, 3: 20})

	w := mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseAdd(w, nil, nil, algebra.Plus[int](), u, v, nil))
	require.Equal(t, map[int]int{0: 1, 2: 12, 3: 20, 5: 3}, entriesOf(t, w))

	w = mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseAddMonoid(w, nil, nil, algebra.MaxMonoid[int](), u, v, nil))
	require.Equal(t, map[int]int{0: 1, 2: 10, 3: 20, 5: 3}, entriesOf(t, w))

	w = mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseAddSemiring(w, nil, nil, algebra.MinPlus[int](), u, v, nil))
	require.Equal(t, map[int]int{0: 1, 2: 2, 3: 20, 5: 3}, entriesOf(t, w))

	w = mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseMult(w, nil, nil, algebra.Times[int](), u, v, nil))
	require.Equal(t, map[int]int{2: 20}, entriesOf(t, w))

	w = mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseMultMonoid(w, nil, nil, algebra.MinMonoid[int](), u, v, nil))
	require.Equal(t, map[int]int{2: 2}, entriesOf(t, w))

	w = mustVector[int](t, 6, nil)
	require.NoError(t, sparse.VectorEWiseMultSemiring(w, nil, nil, algebra.MinPlus[int](), u, v, nil))
	require.Equal(t, map[int]int{2: 12}, entriesOf(t, w))

	short := mustVector[int](t, 5, nil)
	require.ErrorIs(t, sparse.VectorEWiseAdd(short, nil, nil, algebra.Plus[int](), u, v, nil), sparse.ErrDimensionMismatch)
}
