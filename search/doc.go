// Package search finds point-to-point shortest paths over a core.Graph.
//
// All four modes share one best-first relaxation engine built on the
// indexed priority queue from package pq:
//
//	BFS       fewest edges (every edge costs one hop)
//	Dijkstra  minimum total weight
//	AStar     minimum total weight, queue ordered by g + h(v, target)
//	Tollway   minimum total weight when up to k tolls may be waived
//
// The engine is generic over the search state. BFS, Dijkstra and AStar search
// over vertices; Tollway searches over State{Vertex, Coupons} so that
// reaching a vertex with more coupons left is a different, possibly better,
// node than reaching it with fewer.
//
// Engine loop:
//
//  1. Seed the start state at cost 0.
//  2. Extract the cheapest state and mark it settled (search-local).
//  3. If it is a target state, stop: the path is optimal.
//  4. Otherwise relax every move out of it; a move is accepted only if it
//     strictly improves the best known cost of the next state.
//
// Results:
//
// An unreachable target is reported as Result{Found: false} with a nil
// error. start == target yields Path [start] and Cost 0. Missing vertices are
// reported as core.ErrUnknownVertex wrapped with the offending ID.
//
// Concurrency:
//
// Each call owns its queue and maps, so any number of searches may run
// concurrently over a graph that is no longer being mutated.
//
// Observability:
//
// WithLogger attaches a zerolog logger (debug events only); WithObserver
// attaches an Observer that receives Stats after every successful call
// (see package metrics for a Prometheus implementation).
package search
