package search

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tollway/core"
	"github.com/katalvlaran/tollway/pq"
)

// transition is one candidate move produced by an expander.
// step orders the queue; leg records what the move really costs.
type transition[S comparable] struct {
	to   S
	step float64
	leg  Leg
}

// engine holds the mutable state of a single best-first search over states S.
//
// All maps and the queue belong to one call, so the engine is reentrant and a
// shared graph is never written to. settled is search-local.
type engine[S comparable] struct {
	mode Mode
	opts Options

	queue   *pq.Queue[S, float64]
	best    map[S]float64 // S → best known g-cost
	prev    map[S]S       // S → predecessor state
	via     map[S]Leg     // S → leg that reached it
	settled map[S]bool

	// expand lists the moves out of s.
	expand func(s S) ([]transition[S], error)

	// estimate is the heuristic h(s); nil means zero.
	estimate func(s S) float64

	// goal reports whether s is a target state.
	goal func(s S) bool

	stats Stats
}

// newEngine allocates an engine sized for n vertices.
func newEngine[S comparable](mode Mode, opts Options, n int) *engine[S] {
	return &engine[S]{
		mode:    mode,
		opts:    opts,
		queue:   pq.New[S, float64](n),
		best:    make(map[S]float64, n),
		prev:    make(map[S]S, n),
		via:     make(map[S]Leg, n),
		settled: make(map[S]bool, n),
		stats:   Stats{Mode: mode},
	}
}

// h returns the heuristic estimate for s.
func (e *engine[S]) h(s S) float64 {
	if e.estimate == nil {
		return 0
	}

	return e.estimate(s)
}

// run searches from start until a goal state is extracted or the queue empties.
//
// Loop:
//  1. Check the context.
//  2. Extract the minimum (g+h) state and settle it.
//  3. Stop if it is a goal.
//  4. Relax every transition that strictly improves the target's g-cost;
//     a settled target is reopened.
func (e *engine[S]) run(start S) (S, bool, error) {
	var zero S

	e.best[start] = 0
	if err := e.queue.Insert(start, e.h(start)); err != nil {
		return zero, false, fmt.Errorf("search: seed: %w", err)
	}

	for !e.queue.IsEmpty() {
		if err := e.opts.Ctx.Err(); err != nil {
			return zero, false, fmt.Errorf("search: %s interrupted: %w", e.mode, err)
		}

		it, err := e.queue.ExtractMin()
		if err != nil {
			return zero, false, fmt.Errorf("search: extract: %w", err)
		}
		s := it.Value
		e.settled[s] = true
		e.stats.Settled++

		if e.goal(s) {
			return s, true, nil
		}

		moves, err := e.expand(s)
		if err != nil {
			return zero, false, err
		}
		for _, mv := range moves {
			cand := e.best[s] + mv.step
			if old, seen := e.best[mv.to]; seen && cand >= old {
				continue
			}
			e.best[mv.to] = cand
			e.prev[mv.to] = s
			e.via[mv.to] = mv.leg
			e.stats.Relaxed++

			if e.settled[mv.to] {
				delete(e.settled, mv.to)
				e.stats.Reopened++
			}
			if _, err = e.queue.PushOrDecrease(mv.to, cand+e.h(mv.to)); err != nil {
				return zero, false, fmt.Errorf("search: relax: %w", err)
			}
		}
	}

	return zero, false, nil
}

// legsTo walks prev from goal back to start and returns the legs in travel order.
func (e *engine[S]) legsTo(start, goal S) []Leg {
	legs := make([]Leg, 0)
	for s := goal; s != start; s = e.prev[s] {
		legs = append(legs, e.via[s])
	}
	slices.Reverse(legs)

	return legs
}

// buildResult assembles a Result for a found goal.
func buildResult(startID string, legs []Leg, settled int) Result {
	r := Result{
		Found:   true,
		Path:    make([]string, 0, len(legs)+1),
		Legs:    legs,
		Hops:    len(legs),
		Settled: settled,
	}
	r.Path = append(r.Path, startID)
	for _, l := range legs {
		r.Path = append(r.Path, l.To)
		r.Cost += l.Cost
	}

	return r
}

// finish stamps the duration, logs and notifies the observer.
func (e *engine[S]) finish(begin time.Time, startID, targetID string, found bool) {
	e.stats.Found = found
	e.stats.Duration = time.Since(begin)

	e.opts.Logger.Debug().
		Str("mode", string(e.mode)).
		Str("start", startID).
		Str("target", targetID).
		Bool("found", found).
		Int("settled", e.stats.Settled).
		Int("relaxed", e.stats.Relaxed).
		Int("reopened", e.stats.Reopened).
		Dur("took", e.stats.Duration).
		Msg("search finished")

	if e.opts.Observer != nil {
		e.opts.Observer.ObserveSearch(e.stats)
	}
}

// validate checks the graph and both endpoints, in that order.
func validate(g *core.Graph, start, target string) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("search: start %q: %w", start, core.ErrUnknownVertex)
	}
	if !g.HasVertex(target) {
		return fmt.Errorf("search: target %q: %w", target, core.ErrUnknownVertex)
	}

	return nil
}

// neighbors wraps g.Neighbors with search context.
func neighbors(g *core.Graph, id string) ([]core.Edge, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", id, err)
	}

	return edges, nil
}

// payLeg is the leg of traversing e at full price.
func payLeg(e core.Edge) Leg {
	return Leg{From: e.From, To: e.To, Weight: e.Weight, Toll: e.Toll, Cost: e.Weight}
}
