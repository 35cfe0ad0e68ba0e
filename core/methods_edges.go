// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddGeometricEdge/HasEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, ordered by (index(From), index(To)),
//     with index(From) < index(To).
// Concurrency:
//   - Mutations under mu write lock, read queries under mu read lock.
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge connects u and v with an undirected edge of the given weight.
//
// Steps:
//  1. Validate IDs, loop, weight and (after applying opts) toll.
//  2. Lock mu; ensure both endpoints exist (ErrUnknownVertex).
//  3. Reject a parallel edge (ErrDuplicateEdge).
//  4. Store the attributes in adjacency[u][v] and the mirror adjacency[v][u].
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrInvalidWeight, ErrInvalidToll,
//     ErrUnknownVertex, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight float64, opts ...EdgeOption) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, u)
	}
	attr := edgeAttr{weight: weight}
	var opt EdgeOption
	for _, opt = range opts {
		opt(&attr)
	}
	if err := validateAttr(attr); err != nil {
		return fmt.Errorf("%w (edge %q–%q)", err, u, v)
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	if _, exists := g.adjacency[u][v]; exists {
		return fmt.Errorf("%w: %q–%q", ErrDuplicateEdge, u, v)
	}

	// 3) Store and mirror
	g.adjacency[u][v] = attr
	g.adjacency[v][u] = attr
	g.edgeCount++

	return nil
}

// AddGeometricEdge connects u and v with a weight derived from their
// coordinates under metric m. Tolls are passed through opts as in AddEdge.
func (g *Graph) AddGeometricEdge(u, v string, m Metric, opts ...EdgeOption) error {
	w, err := g.Distance(u, v, m)
	if err != nil {
		return err
	}

	return g.AddEdge(u, v, w, opts...)
}

// validateAttr enforces 0 <= toll <= weight < +Inf with no NaN.
func validateAttr(a edgeAttr) error {
	if math.IsNaN(a.weight) || math.IsInf(a.weight, 0) || a.weight < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, a.weight)
	}
	if math.IsNaN(a.toll) || a.toll < 0 || a.toll > a.weight {
		return fmt.Errorf("%w: toll %v with weight %v", ErrInvalidToll, a.toll, a.weight)
	}

	return nil
}

// HasEdge reports whether u and v are adjacent. Unknown IDs ⇒ false.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns the edge between u and v, oriented From == u.
//
// Errors:
//   - ErrUnknownVertex if either endpoint is absent.
//   - ErrEdgeNotFound if both exist but are not adjacent.
func (g *Graph) Edge(u, v string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[u]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrUnknownVertex, u)
	}
	if _, ok = g.vertices[v]; !ok {
		return Edge{}, fmt.Errorf("%w: %q", ErrUnknownVertex, v)
	}
	a, ok := adj[v]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, u, v)
	}

	return Edge{From: u, To: v, Weight: a.weight, Toll: a.toll}, nil
}

// Edges returns every undirected edge exactly once.
//
// Each edge is oriented from its lower-index endpoint, and the slice is sorted
// by (index(From), index(To)), so the result is fully deterministic.
// Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.order {
		ui := g.vertices[u].index
		for v, a := range g.adjacency[u] {
			if g.vertices[v].index > ui {
				out = append(out, Edge{From: u, To: v, Weight: a.weight, Toll: a.toll})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.vertices[out[i].From].index, g.vertices[out[j].From].index
		if fi != fj {
			return fi < fj
		}

		return g.vertices[out[i].To].index < g.vertices[out[j].To].index
	})

	return out
}

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// TolledEdgeCount returns how many edges carry a positive toll.
// A search never benefits from more coupons than this. Complexity: O(V + E).
func (g *Graph) TolledEdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, adj := range g.adjacency {
		for _, a := range adj {
			if a.toll > 0 {
				n++
			}
		}
	}

	return n / 2 // every edge is stored on both sides
}
