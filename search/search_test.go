package search_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/search"
)

// SearchSuite exercises every mode on the hand-built fixtures.
type SearchSuite struct {
	suite.Suite
	g *core.Graph
}

// SetupTest rebuilds the diamond for every test.
func (s *SearchSuite) SetupTest() {
	s.g = diamond(s.T())
}

// TestDijkstraDiamond verifies the cheap detour through C wins.
func (s *SearchSuite) TestDijkstraDiamond() {
	res, err := search.Dijkstra(s.g, "A", "D")
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), []string{"A", "C", "D"}, res.Path)
	require.Equal(s.T(), 2.0, res.Cost)
	require.Equal(s.T(), 2, res.Hops)
	requireConsistent(s.T(), s.g, res)
}

// TestBFSDiamond verifies hop-minimality and FIFO tie-breaking: B is
// inserted before C, so the first two-hop route found runs through B.
func (s *SearchSuite) TestBFSDiamond() {
	res, err := search.BFS(s.g, "A", "D")
	require.NoError(s.T(), err)
	require.True(s.T(), res.Found)
	require.Equal(s.T(), 2, res.Hops)
	require.Equal(s.T(), []string{"A", "B", "D"}, res.Path)
	require.Equal(s.T(), 10.0, res.Cost, "BFS reports the real weight of its path")
	requireConsistent(s.T(), s.g, res)
}

// TestAStarDiamond verifies the default Euclidean heuristic and overrides.
func (s *SearchSuite) TestAStarDiamond() {
	for _, opts := range [][]search.Option{
		nil,
		{search.WithHeuristic(core.TaxicabDistance)},
		{search.WithHeuristic(core.ZeroDistance)},
	} {
		res, err := search.AStar(s.g, "A", "D", opts...)
		require.NoError(s.T(), err)
		require.Equal(s.T(), []string{"A", "C", "D"}, res.Path)
		require.Equal(s.T(), 2.0, res.Cost)
	}
}

// TestTollwayDiamond verifies that a coupon is not spent when the free road is cheaper.
func (s *SearchSuite) TestTollwayDiamond() {
	for _, k := range []int{0, 1, 5, search.UnlimitedCoupons} {
		res, err := search.Tollway(s.g, "A", "D", k)
		require.NoError(s.T(), err)
		require.True(s.T(), res.Found)
		require.Equal(s.T(), []string{"A", "C", "D"}, res.Path)
		require.Equal(s.T(), 2.0, res.Cost)
		require.Equal(s.T(), 0, res.CouponsUsed)
		require.Equal(s.T(), k, res.CouponsLeft)
	}
}

// TestTollwaySpendsCoupon verifies that a coupon is spent when it pays off.
func (s *SearchSuite) TestTollwaySpendsCoupon() {
	res, err := search.Tollway(s.g, "A", "B", 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"A", "B"}, res.Path)
	require.Equal(s.T(), 2.0, res.Cost)
	require.Equal(s.T(), 1, res.CouponsUsed)
	require.Equal(s.T(), 0, res.CouponsLeft)
	require.True(s.T(), res.Legs[0].CouponUsed)
	require.Equal(s.T(), 5.0, res.Legs[0].Weight)
	requireConsistent(s.T(), s.g, res.Result)

	res, err = search.Tollway(s.g, "A", "B", 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 5.0, res.Cost)
	require.Equal(s.T(), 0, res.CouponsUsed)
}

// TestStartEqualsTarget verifies the trivial path in every mode.
func (s *SearchSuite) TestStartEqualsTarget() {
	for _, fn := range []func(*core.Graph, string, string, ...search.Option) (search.Result, error){
		search.BFS, search.Dijkstra, search.AStar,
	} {
		res, err := fn(s.g, "C", "C")
		require.NoError(s.T(), err)
		require.True(s.T(), res.Found)
		require.Equal(s.T(), []string{"C"}, res.Path)
		require.Zero(s.T(), res.Cost)
		require.Zero(s.T(), res.Hops)
		require.Empty(s.T(), res.Legs)
	}
	tr, err := search.Tollway(s.g, "C", "C", 2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []string{"C"}, tr.Path)
	require.Equal(s.T(), 2, tr.CouponsLeft)
}

// TestUnreachable verifies that "no path" is a result, not an error.
func (s *SearchSuite) TestUnreachable() {
	require.NoError(s.T(), s.g.AddVertex("X", core.Point{X: 9, Y: 9}))

	for _, fn := range []func(*core.Graph, string, string, ...search.Option) (search.Result, error){
		search.BFS, search.Dijkstra, search.AStar,
	} {
		res, err := fn(s.g, "A", "X")
		require.NoError(s.T(), err)
		require.False(s.T(), res.Found)
		require.Empty(s.T(), res.Path)
		require.Equal(s.T(), 4, res.Settled)
	}
	tr, err := search.Tollway(s.g, "A", "X", 3)
	require.NoError(s.T(), err)
	require.False(s.T(), tr.Found)
	require.Empty(s.T(), tr.Path)
	require.Equal(s.T(), 3, tr.CouponsLeft)
}

// TestErrors verifies validation sentinels.
func (s *SearchSuite) TestErrors() {
	_, err := search.Dijkstra(nil, "A", "D")
	require.ErrorIs(s.T(), err, search.ErrNilGraph)
	_, err = search.Tollway(nil, "A", "D", 1)
	require.ErrorIs(s.T(), err, search.ErrNilGraph)

	_, err = search.BFS(s.g, "Z", "D")
	require.ErrorIs(s.T(), err, core.ErrUnknownVertex)
	_, err = search.AStar(s.g, "A", "Z")
	require.ErrorIs(s.T(), err, core.ErrUnknownVertex)
	_, err = search.Tollway(s.g, "A", "Z", 1)
	require.ErrorIs(s.T(), err, core.ErrUnknownVertex)

	_, err = search.Tollway(s.g, "A", "D", -1)
	require.ErrorIs(s.T(), err, search.ErrNegativeCoupons)

	_, err = search.AStar(s.g, "A", "D", search.WithHeuristic(nil))
	require.ErrorIs(s.T(), err, search.ErrOptionViolation)
	//nolint:staticcheck // nil context is the point of the test
	_, err = search.Dijkstra(s.g, "A", "D", search.WithContext(nil))
	require.ErrorIs(s.T(), err, search.ErrOptionViolation)
}

// TestCancelledContext verifies cancellation surfaces the context error.
func (s *SearchSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := search.Dijkstra(s.g, "A", "D", search.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
	_, err = search.Tollway(s.g, "A", "D", 1, search.WithContext(ctx))
	require.ErrorIs(s.T(), err, context.Canceled)
}

// TestLogger verifies structured debug events.
func (s *SearchSuite) TestLogger() {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := search.Dijkstra(s.g, "A", "D", search.WithLogger(log))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), `"message":"search finished"`)
	require.Contains(s.T(), buf.String(), `"mode":"dijkstra"`)
	require.Contains(s.T(), buf.String(), `"found":true`)
}

func TestSearchSuite(t *testing.T) {
	suite.Run(t, new(SearchSuite))
}

// TestTollChainBudgets verifies the optimal cost for every coupon budget.
func TestTollChainBudgets(t *testing.T) {
	g := tollChain(t)
	cases := []struct {
		coupons int
		cost    float64
		used    int
	}{
		{0, 10.5, 0},
		{1, 9, 1},
		{2, 6, 2},
		{3, 3, 3},
		{4, 3, 3},
		{search.UnlimitedCoupons, 3, 3},
	}
	for _, tc := range cases {
		res, err := search.Tollway(g, "S", "T", tc.coupons)
		require.NoError(t, err)
		require.True(t, res.Found)
		require.InDelta(t, tc.cost, res.Cost, 1e-12, "coupons=%d", tc.coupons)
		require.Equal(t, tc.used, res.CouponsUsed, "coupons=%d", tc.coupons)
		require.Equal(t, tc.coupons-tc.used, res.CouponsLeft)
		requireConsistent(t, g, res.Result)
	}
}

// TestReopenWithInconsistentHeuristic verifies that a settled vertex is
// reopened when an inconsistent heuristic settled it too early.
//
//	S─(1)─A─(1)─B─(10)─T,  S─(3)─B,  h(A)=5, h(·)=0 otherwise.
func TestReopenWithInconsistentHeuristic(t *testing.T) {
	g := core.NewGraph()
	// X encodes the vertex for the heuristic table.
	require.NoError(t, g.AddVertex("S", core.Point{X: 0}))
	require.NoError(t, g.AddVertex("A", core.Point{X: 1}))
	require.NoError(t, g.AddVertex("B", core.Point{X: 2}))
	require.NoError(t, g.AddVertex("T", core.Point{X: 3}))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("S", "B", 3))
	require.NoError(t, g.AddEdge("B", "T", 10))

	h := func(a, _ core.Point) float64 {
		if a.X == 1 {
			return 5
		}
		return 0
	}
	var got search.Stats
	obs := search.ObserverFunc(func(st search.Stats) { got = st })

	res, err := search.AStar(g, "S", "T", search.WithHeuristic(h), search.WithObserver(obs))
	require.NoError(t, err)
	require.Equal(t, []string{"S", "A", "B", "T"}, res.Path)
	require.Equal(t, 12.0, res.Cost)

	require.Equal(t, search.ModeAStar, got.Mode)
	require.True(t, got.Found)
	require.Equal(t, 1, got.Reopened)
	require.Equal(t, 5, got.Settled)
	require.Equal(t, 5, got.Relaxed)
}

func TestParseMode(t *testing.T) {
	for _, m := range search.Modes() {
		got, err := search.ParseMode(" " + string(m) + " ")
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
	got, err := search.ParseMode("AStar")
	require.NoError(t, err)
	require.Equal(t, search.ModeAStar, got)

	_, err = search.ParseMode("floyd")
	require.ErrorIs(t, err, search.ErrUnknownMode)
}
