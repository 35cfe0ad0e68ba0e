package spatial_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/tollway/builder"
	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/spatial"
)

func gridIndex(t *testing.T, rows, cols int) (*core.Graph, *spatial.Index) {
	t.Helper()
	g, err := builder.Build(builder.Grid(rows, cols), builder.WithSpacing(10))
	require.NoError(t, err)
	idx, err := spatial.NewIndex(g)
	require.NoError(t, err)

	return g, idx
}

func TestNewIndex_Errors(t *testing.T) {
	_, err := spatial.NewIndex(nil)
	require.ErrorIs(t, err, spatial.ErrGraphNil)

	idx, err := spatial.NewIndex(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Len())

	_, err = idx.Nearest(core.Point{})
	require.ErrorIs(t, err, spatial.ErrEmptyIndex)
	_, err = idx.NearestK(core.Point{}, 3)
	require.ErrorIs(t, err, spatial.ErrEmptyIndex)
	_, err = idx.Within(core.Point{}, 1)
	require.ErrorIs(t, err, spatial.ErrEmptyIndex)
}

func TestNearest_Grid(t *testing.T) {
	_, idx := gridIndex(t, 5, 5)
	assert.Equal(t, 25, idx.Len())

	cases := []struct {
		at   core.Point
		want string
	}{
		{core.Point{X: 0, Y: 0}, "0,0"},
		{core.Point{X: 11, Y: 19}, "2,1"},
		{core.Point{X: -100, Y: -100}, "0,0"},
		{core.Point{X: 1000, Y: 41}, "4,4"},
		{core.Point{X: 24, Y: 6}, "1,2"},
	}
	for _, tc := range cases {
		got, err := idx.Nearest(tc.at)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Nearest(%v)", tc.at)
	}
}

func TestNearest_TieBreaksByInsertionOrder(t *testing.T) {
	_, idx := gridIndex(t, 2, 2)

	// Center of the square is equidistant from all four corners.
	got, err := idx.Nearest(core.Point{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, "0,0", got)

	hits, err := idx.NearestK(core.Point{X: 5, Y: 5}, 4)
	require.NoError(t, err)
	ids := make([]string, len(hits))
	for i, h := range hits {
		ids[i] = h.ID
		assert.InDelta(t, math.Sqrt(50), h.Distance, 1e-9)
	}
	assert.Equal(t, []string{"0,0", "0,1", "1,0", "1,1"}, ids)
}

func TestNearestK(t *testing.T) {
	_, idx := gridIndex(t, 3, 3)

	hits, err := idx.NearestK(core.Point{X: 10, Y: 10}, 5)
	require.NoError(t, err)
	require.Len(t, hits, 5)
	assert.Equal(t, "1,1", hits[0].ID)
	assert.Zero(t, hits[0].Distance)
	for _, h := range hits[1:] {
		assert.InDelta(t, 10, h.Distance, 1e-9, h.ID)
	}

	hits, err = idx.NearestK(core.Point{X: 0, Y: 0}, 100)
	require.NoError(t, err)
	assert.Len(t, hits, 9, "k is clamped to the index size")

	_, err = idx.NearestK(core.Point{}, 0)
	require.ErrorIs(t, err, spatial.ErrInvalidK)
	_, err = idx.NearestK(core.Point{X: math.NaN()}, 1)
	require.ErrorIs(t, err, spatial.ErrInvalidPoint)
	_, err = idx.Nearest(core.Point{Y: math.Inf(1)})
	require.ErrorIs(t, err, spatial.ErrInvalidPoint)
}

func TestWithin(t *testing.T) {
	_, idx := gridIndex(t, 3, 3)

	hits, err := idx.Within(core.Point{X: 10, Y: 10}, 10)
	require.NoError(t, err)
	require.Len(t, hits, 5)
	assert.Equal(t, "1,1", hits[0].ID)

	hits, err = idx.Within(core.Point{X: 10, Y: 10}, 9.99)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hits, err = idx.Within(core.Point{X: 5, Y: 5}, 1)
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, err = idx.Within(core.Point{}, -1)
	require.ErrorIs(t, err, spatial.ErrInvalidPoint)
}

// TestNearestK_MatchesBruteForce compares the R-tree answer against a linear
// scan over random points.
func TestNearestK_MatchesBruteForce(t *testing.T) {
	g, err := builder.Build(builder.RandomGeometric(300, 0.1), builder.WithSeed(11), builder.WithSpacing(100))
	require.NoError(t, err)
	idx, err := spatial.NewIndex(g)
	require.NoError(t, err)

	type cand struct {
		id string
		d  float64
	}
	rng := rand.New(rand.NewSource(99))
	for q := 0; q < 50; q++ {
		p := core.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}

		all := make([]cand, 0, g.VertexCount())
		for _, id := range g.Vertices() {
			v, err := g.Vertex(id)
			require.NoError(t, err)
			all = append(all, cand{id: id, d: core.EuclideanDistance(p, v.Point)})
		}
		sort.SliceStable(all, func(i, j int) bool { return all[i].d < all[j].d })

		hits, err := idx.NearestK(p, 7)
		require.NoError(t, err)
		require.Len(t, hits, 7)
		for i, h := range hits {
			assert.InDelta(t, all[i].d, h.Distance, 1e-9, "query %d rank %d", q, i)
		}

		nearest, err := idx.Nearest(p)
		require.NoError(t, err)
		assert.Equal(t, hits[0].ID, nearest)
	}
}
