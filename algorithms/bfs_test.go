package algorithms_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gblas/algorithms"
	"github.com/katalvlaran/gblas/builder"
	"github.com/katalvlaran/gblas/sparse"
)

func TestBFSLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *sparse.Matrix[float64]
		src  int
		opts []algorithms.Option
		want map[int]int
	}{
		{
			name: "path from end",
			a:    fixture(t, nil, builder.Path(5)),
			want: map[int]int{0: 0, 1: 1, 2: 2, 3: 3, 4: 4},
		},
		{
			name: "path from middle",
			a:    fixture(t, nil, builder.Path(5)),
			src:  2,
			want: map[int]int{0: 2, 1: 1, 2: 0, 3: 1, 4: 2},
		},
		{
			name: "max depth",
			a:    fixture(t, nil, builder.Path(5)),
			opts: []algorithms.Option{algorithms.WithMaxDepth(2)},
			want: map[int]int{0: 0, 1: 1, 2: 2},
		},
		{
			name: "disconnected blocks",
			a:    fixture(t, nil, builder.Path(3), builder.Path(2)),
			want: map[int]int{0: 0, 1: 1, 2: 2},
		},
		{
			name: "directed sink",
			a:    fixture(t, []builder.BuilderOption{builder.WithDirected()}, builder.Path(4)),
			src:  3,
			want: map[int]int{3: 0},
		},
		{
			name: "grid corner",
			a:    fixture(t, nil, builder.Grid(3, 3)),
			want: map[int]int{0: 0, 1: 1, 3: 1, 2: 2, 4: 2, 6: 2, 5: 3, 7: 3, 8: 4},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			levels, err := algorithms.BFSLevels(tc.a, tc.src, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, asMap(t, levels))
		})
	}
}

func TestBFSLevels_OnLevel(t *testing.T) {
	t.Parallel()

	type level struct{ depth, frontier int }
	var got []level
	_, err := algorithms.BFSLevels(fixture(t, nil, builder.Star(4)), 0,
		algorithms.OnLevel(func(d, f int) { got = append(got, level{d, f}) }))
	require.NoError(t, err)
	require.Equal(t, []level{{0, 1}, {1, 3}}, got)
}

func TestBFSParents(t *testing.T) {
	t.Parallel()

	parents, err := algorithms.BFSParents(fixture(t, nil, builder.Cycle(6)), 0)
	require.NoError(t, err)
	// 3 is reachable from both 2 and 4; the smaller index wins.
	require.Equal(t, map[int]int{0: 0, 1: 0, 5: 0, 2: 1, 4: 5, 3: 2}, asMap(t, parents))

	parents, err = algorithms.BFSParents(fixture(t, nil, builder.Grid(3, 3)), 0)
	require.NoError(t, err)
	got := asMap(t, parents)
	require.Len(t, got, 9)
	require.Equal(t, 1, got[4])
	require.Equal(t, 5, got[8])

	parents, err = algorithms.BFSParents(fixture(t, nil, builder.Path(5)), 0, algorithms.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, map[int]int{0: 0, 1: 0}, asMap(t, parents))
}

// Every parent edge must exist and go one level up.
func TestBFSParents_ConsistentWithLevels(t *testing.T) {
	t.Parallel()

	a := fixture(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(40, 0.08))
	levels, err := algorithms.BFSLevels(a, 0)
	require.NoError(t, err)
	parents, err := algorithms.BFSParents(a, 0)
	require.NoError(t, err)

	lv, pv := asMap(t, levels), asMap(t, parents)
	require.Len(t, pv, len(lv))
	for v, p := range pv {
		if v == 0 {
			require.Equal(t, 0, p)
			continue
		}
		require.Equal(t, lv[v]-1, lv[p], "vertex %d", v)
		_, err := a.ExtractElement(p, v)
		require.NoError(t, err)
	}
}

func TestBFS_Errors(t *testing.T) {
	t.Parallel()

	square := fixture(t, nil, builder.Path(3))
	rect, err := sparse.NewMatrix[float64](2, 3)
	require.NoError(t, err)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = algorithms.BFSLevels[float64](nil, 0)
	require.ErrorIs(t, err, algorithms.ErrNilMatrix)
	_, err = algorithms.BFSLevels(&sparse.Matrix[float64]{}, 0)
	require.ErrorIs(t, err, algorithms.ErrNilMatrix)
	require.ErrorIs(t, err, sparse.ErrUninitializedObject)
	_, err = algorithms.BFSLevels(rect, 0)
	require.ErrorIs(t, err, algorithms.ErrNotSquare)
	_, err = algorithms.BFSLevels(square, 3)
	require.ErrorIs(t, err, algorithms.ErrSourceOutOfRange)
	_, err = algorithms.BFSParents(square, -1)
	require.ErrorIs(t, err, algorithms.ErrSourceOutOfRange)
	_, err = algorithms.BFSLevels(square, 0, algorithms.WithMaxDepth(-1))
	require.ErrorIs(t, err, algorithms.ErrOptionViolation)
	_, err = algorithms.BFSParents(square, 0, algorithms.WithContext(cancelled))
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkBFSLevels_Grid(b *testing.B) {
	a, err := builder.BuildMatrix[float64](nil, builder.Grid(64, 64))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := algorithms.BFSLevels(a, 0); err != nil {
			b.Fatal(err)
		}
	}
}
