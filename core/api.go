// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only summary of a graph.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is an immutable-by-convention snapshot of catalog sizes.
type GraphStats struct {
	VertexCount     int     // number of vertices
	EdgeCount       int     // number of undirected edges
	TolledEdgeCount int     // edges with Toll > 0
	IsolatedCount   int     // vertices with no incident edge
	TotalWeight     float64 // sum of edge weights
	TotalToll       float64 // sum of edge tolls
}

// Stats produces a deterministic, read-only snapshot of catalog sizes and
// weight totals.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Walk vertices in insertion order; count each edge from its
//     lower-index endpoint so every undirected edge is seen once.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.order),
		EdgeCount:   g.edgeCount,
	}
	for _, u := range g.order {
		adj := g.adjacency[u]
		if len(adj) == 0 {
			stats.IsolatedCount++
		}
		ui := g.vertices[u].index
		for v, a := range adj {
			if g.vertices[v].index < ui {
				continue // counted from the other side
			}
			stats.TotalWeight += a.weight
			stats.TotalToll += a.toll
			if a.toll > 0 {
				stats.TolledEdgeCount++
			}
		}
	}

	return &stats
}
