package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollway/builder"
	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/search"
)

// diamond is the four-vertex tollway fixture:
//
//	A─(5, toll 3)─B─(5)─D
//	A─(1)─────────C─(1)─D
func diamond(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.Point{X: 0, Y: 0}))
	require.NoError(t, g.AddVertex("B", core.Point{X: 1, Y: 0}))
	require.NoError(t, g.AddVertex("C", core.Point{X: 0, Y: 1}))
	require.NoError(t, g.AddVertex("D", core.Point{X: 1, Y: 1}))
	require.NoError(t, g.AddEdge("A", "B", 5, core.WithToll(3)))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	return g
}

// tollChain: the free road S–F1–F2–T costs 10.5; the tolled road S–P–Q–T
// costs 12 at full price but each of its three edges can be waived down to 1.
//
//	S─(3.5)─F1─(3.5)─F2─(3.5)─T
//	S─(4/3)─P─(4/3)─Q─(4/3)─T
func tollChain(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"S", "F1", "F2", "T", "P", "Q"} {
		require.NoError(t, g.AddVertex(id, core.Point{X: float64(i)}))
	}
	require.NoError(t, g.AddEdge("S", "F1", 3.5))
	require.NoError(t, g.AddEdge("F1", "F2", 3.5))
	require.NoError(t, g.AddEdge("F2", "T", 3.5))
	require.NoError(t, g.AddEdge("S", "P", 4, core.WithToll(3)))
	require.NoError(t, g.AddEdge("P", "Q", 4, core.WithToll(3)))
	require.NoError(t, g.AddEdge("Q", "T", 4, core.WithToll(3)))

	return g
}

// tolledGrid returns a seeded grid with tolls and detours.
func tolledGrid(t testing.TB, rows, cols int, seed uint64) *core.Graph {
	t.Helper()
	g, err := builder.Build(builder.Grid(rows, cols),
		builder.WithSeed(seed),
		builder.WithTollProbability(0.4),
		builder.WithTollFraction(0.3, 0.9),
		builder.WithDetour(1.8),
	)
	require.NoError(t, err)

	return g
}

// discounted copies g with every edge at Weight-Toll and no tolls.
func discounted(t testing.TB, g *core.Graph) *core.Graph {
	t.Helper()
	d := core.NewGraph()
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		require.NoError(t, d.AddVertex(id, v.Point))
	}
	for _, e := range g.Edges() {
		require.NoError(t, d.AddEdge(e.From, e.To, e.Discounted()))
	}

	return d
}

// hopDistance is a plain queue-based BFS used as a reference.
func hopDistance(t testing.TB, g *core.Graph, start, target string) (int, bool) {
	t.Helper()
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == target {
			return dist[u], true
		}
		nb, err := g.NeighborIDs(u)
		require.NoError(t, err)
		for _, v := range nb {
			if _, ok := dist[v]; !ok {
				dist[v] = dist[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return 0, false
}

// requireConsistent checks that Path, Legs, Hops and Cost agree with g.
func requireConsistent(t testing.TB, g *core.Graph, res search.Result) {
	t.Helper()
	require.Len(t, res.Path, len(res.Legs)+1)
	require.Equal(t, len(res.Legs), res.Hops)
	sum := 0.0
	for i, l := range res.Legs {
		require.Equal(t, res.Path[i], l.From)
		require.Equal(t, res.Path[i+1], l.To)
		e, err := g.Edge(l.From, l.To)
		require.NoError(t, err)
		require.Equal(t, e.Weight, l.Weight)
		require.Equal(t, e.Toll, l.Toll)
		if l.CouponUsed {
			require.Equal(t, e.Discounted(), l.Cost)
		} else {
			require.Equal(t, e.Weight, l.Cost)
		}
		sum += l.Cost
	}
	require.InDelta(t, sum, res.Cost, 1e-9)
}
