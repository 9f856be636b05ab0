package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algorithms"
	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/sparse"
)

func TestSSSP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *sparse.Matrix[int]
		opts []algorithms.Option
		want map[int]int
	}{
		{
			name: "detour beats direct edge",
			a: digraph(t, 5,
				arc[int]{0, 1, 4}, arc[int]{0, 2, 1}, arc[int]{2, 1, 2},
				arc[int]{1, 3, 1}, arc[int]{2, 3, 5}),
			want: map[int]int{0: 0, 1: 3, 2: 1, 3: 4},
		},
		{
			name: "negative edge without cycle",
			a:    digraph(t, 3, arc[int]{0, 1, 4}, arc[int]{0, 2, 5}, arc[int]{2, 1, -3}),
			want: map[int]int{0: 0, 1: 2, 2: 5},
		},
		{
			name: "one round is one hop",
			a: digraph(t, 5,
				arc[int]{0, 1, 4}, arc[int]{0, 2, 1}, arc[int]{2, 1, 2},
				arc[int]{1, 3, 1}, arc[int]{2, 3, 5}),
			opts: []algorithms.Option{algorithms.WithMaxIterations(1)},
			want: map[int]int{0: 0, 1: 4, 2: 1},
		},
		{
			name: "isolated source",
			a:    digraph[int](t, 2),
			want: map[int]int{0: 0},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := algorithms.SSSP(tc.a, 0, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, asMap(t, d))
		})
	}
}

func TestSSSP_NegativeCycle(t *testing.T) {
	t.Parallel()

	a := digraph(t, 4, arc[int]{0, 1, 1}, arc[int]{1, 2, -2}, arc[int]{2, 1, 1})
	_, err := algorithms.SSSP(a, 0)
	require.ErrorIs(t, err, algorithms.ErrNegativeCycle)

	// Unreachable from 3, so no error.
	d, err := algorithms.SSSP(a, 3)
	require.NoError(t, err)
	require.Equal(t, map[int]int{3: 0}, asMap(t, d))

	loop := digraph(t, 1, arc[int]{0, 0, -1})
	_, err = algorithms.SSSP(loop, 0)
	require.ErrorIs(t, err, algorithms.ErrNegativeCycle)
}

// With unit weights shortest distances equal BFS levels.
func TestSSSP_UnitWeightsMatchBFS(t *testing.T) {
	t.Parallel()

	a := fixture(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(50, 0.06), builder.Grid(4, 5))
	d, err := algorithms.SSSP(a, 0)
	require.NoError(t, err)
	levels, err := algorithms.BFSLevels(a, 0)
	require.NoError(t, err)

	dist, lv := asMap(t, d), asMap(t, levels)
	require.Len(t, dist, len(lv))
	for v, l := range lv {
		require.Equal(t, float64(l), dist[v], "vertex %d", v)
	}
}

func TestSSSP_Errors(t *testing.T) {
	t.Parallel()

	_, err := algorithms.SSSP[float64](nil, 0)
	require.ErrorIs(t, err, algorithms.ErrNilMatrix)
	_, err = algorithms.SSSP(fixture(t, nil, builder.Path(2)), 2)
	require.ErrorIs(t, err, algorithms.ErrSourceOutOfRange)
	_, err = algorithms.SSSP(fixture(t, nil, builder.Path(2)), 0, algorithms.WithMaxIterations(-2))
	require.ErrorIs(t, err, algorithms.ErrOptionViolation)
}
