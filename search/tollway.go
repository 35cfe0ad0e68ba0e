package search

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tollway/core"
)

// Tollway finds the cheapest path from start to target when up to coupons
// tolls may be waived. A coupon spent on an edge reduces its cost from
// Weight to Weight-Toll; each coupon covers one edge.
//
// The search runs over states (vertex, coupons remaining). From every state
// and every incident edge it relaxes two candidates independently:
//
//   - pay:   cost += Weight, coupons unchanged;
//   - waive: cost += Weight-Toll, coupons-1 (only if Toll > 0 and coupons > 0).
//
// The first target state extracted from the queue is optimal over every
// coupon level. The effective budget is min(coupons, g.TolledEdgeCount()),
// since no path can use more coupons than there are tolled edges; pass
// UnlimitedCoupons to lift the budget entirely.
//
// A heuristic given with WithHeuristic turns this into a goal-directed search;
// it must not overestimate the fully discounted remaining cost to stay exact.
//
// Errors: ErrNilGraph, core.ErrUnknownVertex (wrapped), ErrNegativeCoupons,
// ErrOptionViolation, or the context error (wrapped) on cancellation.
//
// Complexity: O((V·K + E·K) log(V·K)) with K = effective budget + 1.
func Tollway(g *core.Graph, start, target string, coupons int, opts ...Option) (TollwayResult, error) {
	if err := validate(g, start, target); err != nil {
		return TollwayResult{}, err
	}
	if coupons < 0 {
		return TollwayResult{}, fmt.Errorf("%w: %d", ErrNegativeCoupons, coupons)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return TollwayResult{}, err
	}

	budget := coupons
	if tolled := g.TolledEdgeCount(); budget > tolled {
		budget = tolled
	}

	begin := time.Now()
	e := newEngine[State](ModeTollway, o, g.VertexCount())
	e.goal = func(s State) bool { return s.Vertex == target }
	e.expand = func(s State) ([]transition[State], error) {
		edges, err := neighbors(g, s.Vertex)
		if err != nil {
			return nil, err
		}
		moves := make([]transition[State], 0, 2*len(edges))
		for _, ed := range edges {
			moves = append(moves, transition[State]{
				to:   State{Vertex: ed.To, Coupons: s.Coupons},
				step: ed.Weight,
				leg:  payLeg(ed),
			})
			if ed.Tolled() && s.Coupons > 0 {
				waived := payLeg(ed)
				waived.Cost = ed.Discounted()
				waived.CouponUsed = true
				moves = append(moves, transition[State]{
					to:   State{Vertex: ed.To, Coupons: s.Coupons - 1},
					step: waived.Cost,
					leg:  waived,
				})
			}
		}

		return moves, nil
	}
	if o.Heuristic != nil {
		est, err := heuristicTo(g, target, o.Heuristic)
		if err != nil {
			return TollwayResult{}, err
		}
		e.estimate = func(s State) float64 { return est(s.Vertex) }
	}

	o.Logger.Debug().
		Str("mode", string(ModeTollway)).
		Str("start", start).
		Str("target", target).
		Int("coupons", coupons).
		Int("budget", budget).
		Msg("search started")

	seed := State{Vertex: start, Coupons: budget}
	goal, found, err := e.run(seed)
	if err != nil {
		o.Logger.Debug().Err(err).Str("mode", string(ModeTollway)).Msg("search aborted")
		return TollwayResult{}, err
	}
	e.finish(begin, start, target, found)
	if !found {
		return TollwayResult{
			Result:      Result{Settled: e.stats.Settled},
			CouponsLeft: coupons,
		}, nil
	}

	res := TollwayResult{Result: buildResult(start, e.legsTo(seed, goal), e.stats.Settled)}
	for _, l := range res.Legs {
		if l.CouponUsed {
			res.CouponsUsed++
		}
	}
	res.CouponsLeft = coupons - res.CouponsUsed

	return res, nil
}
