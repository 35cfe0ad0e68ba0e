package search

import "github.com/katalvlaran/tollway/core"

// BFS finds a path from start to target with the fewest edges.
//
// Every edge counts as one hop. Because the queue breaks ties in insertion
// order, vertices are settled in true breadth-first order. Result.Hops is the
// minimum hop count; Result.Cost is the real weight of the chosen path, which
// need not be the cheapest path overall.
//
// Errors: ErrNilGraph, core.ErrUnknownVertex (wrapped), ErrOptionViolation,
// or the context error (wrapped) on cancellation.
//
// Complexity: O((V + E) log V).
func BFS(g *core.Graph, start, target string, opts ...Option) (Result, error) {
	return vertexSearch(g, start, target, ModeBFS, unitStep, opts...)
}
