package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/metrics"
	"github.com/katalvlaran/tollway/search"
)

func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D", "Z"} {
		require.NoError(t, g.AddVertex(id, core.Point{}))
	}
	require.NoError(t, g.AddEdge("A", "B", 5, core.WithToll(4)))
	require.NoError(t, g.AddEdge("B", "D", 5))
	require.NoError(t, g.AddEdge("A", "C", 3))
	require.NoError(t, g.AddEdge("C", "D", 3))

	return g
}

func find(samples []metrics.Sample, name, labels string) (float64, bool) {
	for _, s := range samples {
		if s.Name == name && s.Labels == labels {
			return s.Value, true
		}
	}

	return 0, false
}

func TestCollector_WithSearches(t *testing.T) {
	g := square(t)
	reg := prometheus.NewRegistry()
	col, err := metrics.NewCollector(reg, "tollway")
	require.NoError(t, err)
	obs := search.WithObserver(col)

	_, err = search.Dijkstra(g, "A", "D", obs)
	require.NoError(t, err)
	_, err = search.BFS(g, "A", "D", obs)
	require.NoError(t, err)
	res, err := search.Tollway(g, "A", "D", 1, obs)
	require.NoError(t, err)
	assert.Equal(t, 6.0, res.Cost)
	_, err = search.Dijkstra(g, "A", "Z", obs)
	require.NoError(t, err)

	// Failed calls are not observed.
	_, err = search.Dijkstra(g, "A", "nope", obs)
	require.ErrorIs(t, err, core.ErrUnknownVertex)

	samples, err := metrics.Snapshot(reg)
	require.NoError(t, err)

	v, ok := find(samples, "tollway_searches_total", "mode=dijkstra,outcome=found")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	v, ok = find(samples, "tollway_searches_total", "mode=dijkstra,outcome=unreachable")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	v, ok = find(samples, "tollway_searches_total", "mode=tollway,outcome=found")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
	v, ok = find(samples, "tollway_settled_states_count", "mode=dijkstra")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
	_, ok = find(samples, "tollway_search_duration_seconds_sum", "mode=bfs")
	assert.True(t, ok)

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		assert.True(t, prev.Name < cur.Name || (prev.Name == cur.Name && prev.Labels <= cur.Labels), "snapshot is sorted")
	}
}
