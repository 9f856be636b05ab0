package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/sparse"
)

// arc is a weighted directed edge.
type arc[T any] struct {
	u, v int
	w    T
}

func digraph[T comparable](t *testing.T, n int, arcs ...arc[T]) *sparse.Matrix[T] {
	t.Helper()
	m, err := sparse.NewMatrix[T](n, n)
	require.NoError(t, err)
	for _, a := range arcs {
		require.NoError(t, m.SetElement(a.u, a.v, a.w))
	}

	return m
}

func fixture(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *sparse.Matrix[float64] {
	t.Helper()
	m, err := builder.BuildMatrix[float64](opts, cons...)
	require.NoError(t, err)

	return m
}

// asMap flattens a result vector.
func asMap[T comparable](t *testing.T, v *sparse.Vector[T]) map[int]T {
	t.Helper()
	idx, vals, err := v.ExtractTuples()
	require.NoError(t, err)
	out := make(map[int]T, len(idx))
	for k, i := range idx {
		out[i] = vals[k]
	}

	return out
}

