package search

import (
	"time"

	"github.com/katalvlaran/tollway/core"
)

// stepFunc prices one edge for queue ordering.
type stepFunc func(e core.Edge) float64

// unitStep makes every edge cost one hop.
func unitStep(core.Edge) float64 { return 1 }

// weightStep orders by real edge weight.
func weightStep(e core.Edge) float64 { return e.Weight }

// vertexSearch runs the engine over plain vertex states. It is the shared
// body of BFS, Dijkstra and AStar.
func vertexSearch(g *core.Graph, start, target string, mode Mode, step stepFunc, opts ...Option) (Result, error) {
	if err := validate(g, start, target); err != nil {
		return Result{}, err
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, err
	}

	begin := time.Now()
	e := newEngine[string](mode, o, g.VertexCount())
	e.goal = func(s string) bool { return s == target }
	e.expand = func(s string) ([]transition[string], error) {
		edges, err := neighbors(g, s)
		if err != nil {
			return nil, err
		}
		moves := make([]transition[string], len(edges))
		for i, ed := range edges {
			moves[i] = transition[string]{to: ed.To, step: step(ed), leg: payLeg(ed)}
		}

		return moves, nil
	}
	if mode == ModeAStar {
		h := o.Heuristic
		if h == nil {
			h = core.EuclideanDistance
		}
		est, err := heuristicTo(g, target, h)
		if err != nil {
			return Result{}, err
		}
		e.estimate = est
	}

	o.Logger.Debug().Str("mode", string(mode)).Str("start", start).Str("target", target).Msg("search started")
	goal, found, err := e.run(start)
	if err != nil {
		o.Logger.Debug().Err(err).Str("mode", string(mode)).Msg("search aborted")
		return Result{}, err
	}
	e.finish(begin, start, target, found)
	if !found {
		return Result{Settled: e.stats.Settled}, nil
	}

	return buildResult(start, e.legsTo(start, goal), e.stats.Settled), nil
}

// heuristicTo returns h(·, target) with per-vertex memoization.
func heuristicTo(g *core.Graph, target string, h core.Metric) (func(string) float64, error) {
	tv, err := g.Vertex(target)
	if err != nil {
		return nil, err
	}
	memo := make(map[string]float64)

	return func(id string) float64 {
		if d, ok := memo[id]; ok {
			return d
		}
		v, err := g.Vertex(id)
		if err != nil {
			return 0
		}
		d := h(v.Point, tv.Point)
		memo[id] = d

		return d
	}, nil
}
