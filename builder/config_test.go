// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) and the shared edge collector.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	require.False(t, cfg.directed)
	require.False(t, cfg.loops)
	require.Nil(t, cfg.rng, "unseeded config must stay deterministic")
	require.Equal(t, DefaultEdgeWeight, cfg.weight())
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithConstantWeight(3), WithConstantWeight(7))
	require.Equal(t, 7.0, cfg.weight())

	r := rand.New(rand.NewSource(1))
	cfg = newBuilderConfig(WithSeed(5), WithRand(r))
	require.Same(t, r, cfg.rng)
}

// TestRNGOptions verifies reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		require.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	require.Panics(t, func() { WithRand(nil) })
	require.Panics(t, func() { WithWeightFn(nil) })
}

func TestEdgeList(t *testing.T) {
	t.Parallel()

	el := &edgeList{}
	require.Equal(t, 0, el.addVertices(3))
	require.Equal(t, 3, el.addVertices(2))
	require.Equal(t, 5, el.n)

	undirected := newBuilderConfig()
	el.addEdge(undirected, 0, 1, 2)
	el.addEdge(undirected, 4, 4, 9)
	require.Equal(t, 3, el.edges(), "loop is stored once")
	require.Equal(t, []int{0, 1, 4}, el.rows)
	require.Equal(t, []int{1, 0, 4}, el.cols)

	directed := newBuilderConfig(WithDirected())
	el.addEdge(directed, 2, 3, 1)
	require.Equal(t, 4, el.edges())
}
