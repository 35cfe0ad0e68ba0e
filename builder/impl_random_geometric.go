// SPDX-License-Identifier: MIT
// Package: tollway/builder
//
// impl_random_geometric.go - implementation of RandomGeometric(n, radius).
//
// Canonical model:
//   - n points drawn uniformly from [0, spacing)².
//   - Undirected edge {i,j} (i<j) whenever their distance ≤ radius·spacing.
//   - A spanning chain 0–1–…–(n-1) is added where missing so the graph is connected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - radius > 0 and finite (else ErrOptionViolation).
//   - RNG required (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) pair checks.
//
// Determinism:
//   - Points are drawn in index order before any edge draw.
//   - Pairs are emitted i asc, j asc, then chain links in i asc.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tollway/core"
)

const (
	methodRandomGeometric = "RandomGeometric"
	minGeometricVertices  = 1
)

// RandomGeometric returns a Constructor that samples a connected random
// geometric graph, a rough stand-in for a road network.
func RandomGeometric(n int, radius float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate in documented priority.
		if n < minGeometricVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGeometric, n, minGeometricVertices, ErrTooFewVertices)
		}
		if !(radius > 0) || math.IsInf(radius, 0) {
			return fmt.Errorf("%s: radius=%v must be > 0 and finite: %w", methodRandomGeometric, radius, ErrOptionViolation)
		}
		if err := requireRand(cfg, methodRandomGeometric, true); err != nil {
			return err
		}

		// 2) Place points.
		ids := make([]string, n)
		pts := make([]core.Point, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			pts[i] = core.Point{X: cfg.rng.Float64() * cfg.spacing, Y: cfg.rng.Float64() * cfg.spacing}
			if err := g.AddVertex(ids[i], pts[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomGeometric, ids[i], err)
			}
		}

		// 3) Proximity edges.
		reach := radius * cfg.spacing
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if core.EuclideanDistance(pts[i], pts[j]) > reach {
					continue
				}
				if err := connect(g, cfg, methodRandomGeometric, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		// 4) Spanning chain.
		for i := 1; i < n; i++ {
			if g.HasEdge(ids[i-1], ids[i]) {
				continue
			}
			if err := connect(g, cfg, methodRandomGeometric, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
