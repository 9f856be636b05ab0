// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gblas/algebra"
	"github.com/katalvlaran/gblas/sparse"
)

// denseOf is sparse.DenseOf with the error folded into the test.
func denseOf(t testing.TB, m *sparse.Matrix[int]) *mat.Dense {
	t.Helper()
	d, err := sparse.DenseOf(m)
	require.NoError(t, err)

	return d
}

func TestMxM_MatchesDenseReference(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		ta, tb bool
	}{
		{"A*B", false, false},
		{"At*B", true, false},
		{"A*Bt", false, true},
		{"At*Bt", true, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rng := rand.New(rand.NewSource(42))
			for trial := 0; trial < 25; trial++ {
				m, k, n := 1+rng.Intn(8), 1+rng.Intn(8), 1+rng.Intn(8)
				ar, ac := m, k
				if tc.ta {
					ar, ac = k, m
				}
				br, bc := k, n
				if tc.tb {
					br, bc = n, k
				}
				a := randomMatrix(t, rng, ar, ac, 0.35)
				b := randomMatrix(t, rng, br, bc, 0.35)
				c := mustMatrix[int](t, m, n)

				var opts []sparse.Option
				if tc.ta {
					opts = append(opts, sparse.WithTransposeA())
				}
				if tc.tb {
					opts = append(opts, sparse.WithTransposeB())
				}
				require.NoError(t, sparse.MxM(c, nil, nil, algebra.PlusTimes[int](), a, b, sparse.NewDescriptor(opts...)))
				require.NoError(t, sparse.CheckInvariants(c))

				var ad, bd mat.Matrix = denseOf(t, a), denseOf(t, b)
				if tc.ta {
					ad = ad.T()
				}
				if tc.tb {
					bd = bd.T()
				}
				want := mat.NewDense(m, n, nil)
				want.Mul(ad, bd)
				require.True(t, mat.Equal(want, denseOf(t, c)),
					"trial %d:\nwant %v\ngot  %v", trial, mat.Formatted(want), mat.Formatted(denseOf(t, c)))

				// Products of positive values are never zero, so the
				// pattern matches the dense non-zeros exactly.
				nz := 0
				for i := 0; i < m; i++ {
					for j := 0; j < n; j++ {
						if want.At(i, j) != 0 {
							nz++
						}
					}
				}
				require.Equal(t, nz, c.Nvals())
			}
		})
	}
}

// bruteMxM multiplies over an arbitrary semiring by the triple loop.
func bruteMxM(t testing.TB, s algebra.Semiring[int, int, int], a, b *sparse.Matrix[int]) map[[2]int]int {
	t.Helper()
	out := map[[2]int]int{}
	for _, x := range cellsOf(t, a) {
		for _, y := range cellsOf(t, b) {
			if x.c != y.r {
				continue
			}
			key := [2]int{x.r, y.c}
			p := s.Mult(x.v, y.v)
			if old, ok := out[key]; ok {
				out[key] = s.Add(old, p)
			} else {
				out[key] = p
			}
		}
	}

	return out
}

func TestMxM_Semirings(t *testing.T) {
	t.Parallel()

	semirings := []algebra.Semiring[int, int, int]{
		algebra.MinPlus[int](), algebra.MaxPlus[int](), algebra.MinMax[int](),
		algebra.MaxMin[int](), algebra.PlusMin[int](), algebra.MaxTimes[int](),
	}
	rng := rand.New(rand.NewSource(3))
	for _, s := range semirings {
		a := randomMatrix(t, rng, 6, 5, 0.4)
		b := randomMatrix(t, rng, 5, 7, 0.4)
		c := mustMatrix[int](t, 6, 7)
		require.NoError(t, sparse.MxM(c, nil, nil, s, a, b, nil), s.Name())

		got := map[[2]int]int{}
		for _, x := range cellsOf(t, c) {
			got[[2]int{x.r, x.c}] = x.v
		}
		require.Equal(t, bruteMxM(t, s, a, b), got, s.Name())
	}
}

func TestMxM_MixedDomains(t *testing.T) {
	t.Parallel()

	// Boolean frontier times an int matrix under min.first keeps the
	// frontier's values.
	a := mustMatrix(t, 1, 3, cell[int]{0, 0, 7}, cell[int]{0, 2, 4})
	b := mustMatrix(t, 3, 2, cell[bool]{0, 1, true}, cell[bool]{2, 1, true}, cell[bool]{2, 0, true})
	c := mustMatrix[int](t, 1, 2)
	require.NoError(t, sparse.MxM(c, nil, nil, algebra.MinFirst[int, bool](), a, b, nil))
	require.Equal(t, []cell[int]{{0, 0, 4}, {0, 1, 4}}, cellsOf(t, c))
}

func TestMxM_Errors(t *testing.T) {
	t.Parallel()

	a := mustMatrix[int](t, 2, 3)
	b := mustMatrix[int](t, 4, 2)
	c := mustMatrix(t, 2, 2, cell[int]{0, 0, 9})

	err := sparse.MxM(c, nil, nil, algebra.PlusTimes[int](), a, b, nil)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	require.Equal(t, []cell[int]{{0, 0, 9}}, cellsOf(t, c), "C unchanged on error")

	var zero algebra.Semiring[int, int, int]
	require.ErrorIs(t, sparse.MxM(c, nil, nil, zero, a, a, nil), sparse.ErrUninitializedObject)
	require.ErrorIs(t, sparse.MxM[int, int, int](nil, nil, nil, algebra.PlusTimes[int](), a, b, nil), sparse.ErrNullPointer)

	var badAccum algebra.BinaryOp[int, int, int]
	err = sparse.MxM(c, nil, &badAccum, algebra.PlusTimes[int](), a, a, sparse.NewDescriptor(sparse.WithTransposeB()))
	require.ErrorIs(t, err, sparse.ErrUninitializedObject)
}

func TestMxM_AliasedOutput(t *testing.T) {
	t.Parallel()

	// C = C·C reads the old C throughout.
	c := mustMatrix(t, 2, 2, cell[int]{0, 0, 1}, cell[int]{0, 1, 2}, cell[int]{1, 1, 3})
	require.NoError(t, sparse.MxM(c, nil, nil, algebra.PlusTimes[int](), c, c, nil))
	require.Equal(t, []cell[int]{{0, 0, 1}, {0, 1, 8}, {1, 1, 9}}, cellsOf(t, c))
}

func TestMxVAndVxM_MatchDense(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	a := randomMatrix(t, rng, 7, 5, 0.4)
	ad := denseOf(t, a)

	u := mustVector(t, 5, map[int]int{0: 2, 3: 5, 4: 1})
	w := mustVector[int](t, 7, nil)
	require.NoError(t, sparse.MxV(w, nil, nil, algebra.PlusTimes[int](), a, u, nil))
	assertVecMatchesDense(t, w, ad, u, false)

	x := mustVector(t, 7, map[int]int{1: 3, 6: 2})
	y := mustVector[int](t, 5, nil)
	require.NoError(t, sparse.VxM(y, nil, nil, algebra.PlusTimes[int](), x, a, nil))
	assertVecMatchesDense(t, y, ad, x, true)

	// Transposed readings: Aᵀ·x equals xᵀ·A.
	z := mustVector[int](t, 5, nil)
	require.NoError(t, sparse.MxV(z, nil, nil, algebra.PlusTimes[int](), a, x, sparse.NewDescriptor(sparse.WithTransposeA())))
	require.Equal(t, entriesOf(t, y), entriesOf(t, z))

	q := mustVector[int](t, 7, nil)
	require.NoError(t, sparse.VxM(q, nil, nil, algebra.PlusTimes[int](), u, a, sparse.NewDescriptor(sparse.WithTransposeB())))
	require.Equal(t, entriesOf(t, w), entriesOf(t, q))

	require.ErrorIs(t, sparse.MxV(w, nil, nil, algebra.PlusTimes[int](), a, x, nil), sparse.ErrDimensionMismatch)
}

func assertVecMatchesDense(t *testing.T, got *sparse.Vector[int], a *mat.Dense, u *sparse.Vector[int], left bool) {
	t.Helper()
	ud, err := sparse.DenseVectorOf(u)
	require.NoError(t, err)
	var want mat.VecDense
	if left {
		want.MulVec(a.T(), ud)
	} else {
		want.MulVec(a, ud)
	}
	gd, err := sparse.DenseVectorOf(got)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(&want, gd, 0), fmt.Sprintf("want %v got %v", want.RawVector().Data, gd.RawVector().Data))
}
