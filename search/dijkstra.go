package search

import "github.com/katalvlaran/tollway/core"

// Dijkstra finds the minimum-weight path from start to target.
//
// The search stops as soon as target is extracted from the queue, so only the
// part of the graph closer than target is settled. Any heuristic supplied via
// WithHeuristic is ignored; use AStar for goal-directed search.
//
// Errors: ErrNilGraph, core.ErrUnknownVertex (wrapped), ErrOptionViolation,
// or the context error (wrapped) on cancellation.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, start, target string, opts ...Option) (Result, error) {
	return vertexSearch(g, start, target, ModeDijkstra, weightStep, opts...)
}

// AStar finds the minimum-weight path from start to target, ordering the
// queue by g + h(vertex, target).
//
// The default heuristic is core.EuclideanDistance over vertex coordinates. It
// is admissible only when every edge weight is at least the straight-line
// distance between its endpoints (true for graphs built with
// AddGeometricEdge and a Euclidean or Taxicab metric). With an inadmissible
// heuristic the result may be suboptimal; with an inconsistent one settled
// vertices are reopened as needed. Override with WithHeuristic, e.g.
// core.TaxicabDistance, core.GreatCircleDistance or core.ZeroDistance.
//
// Errors: as Dijkstra.
func AStar(g *core.Graph, start, target string, opts ...Option) (Result, error) {
	return vertexSearch(g, start, target, ModeAStar, weightStep, opts...)
}
