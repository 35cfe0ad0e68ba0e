// SPDX-License-Identifier: MIT
// Package: tollway/builder
//
// edges.go - geometric edge emission with detour and toll policies.
//
// Weight policy:
//   w = EuclideanDistance(pu, pv) × d,   d = 1                       (detourMax == 1)
//                                        d ~ U[1, detourMax]         (otherwise)
//   Since d ≥ 1, the Euclidean heuristic stays admissible on generated graphs.
//
// Toll policy:
//   with probability tollProb: toll = w × f,  f ~ U[tollMin, tollMax]
//   otherwise toll = 0. Since f ≤ 1, 0 ≤ toll ≤ w.
//
// Determinism: draws happen in edge emission order, detour first, then the
// toll coin, then the toll fraction.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tollway/core"
)

// connect adds the undirected edge u–v using cfg's weight and toll policy.
// method tags the error context.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w, err := g.Distance(u, v, core.EuclideanDistance)
	if err != nil {
		return fmt.Errorf("%s: Distance(%s,%s): %w", method, u, v, err)
	}
	if cfg.detourMax > 1 {
		w *= 1 + cfg.rng.Float64()*(cfg.detourMax-1)
	}

	var opts []core.EdgeOption
	if cfg.tollProb > 0 && cfg.rng.Float64() < cfg.tollProb {
		f := cfg.tollMin + cfg.rng.Float64()*(cfg.tollMax-cfg.tollMin)
		opts = append(opts, core.WithToll(w*f))
	}

	if err = g.AddEdge(u, v, w, opts...); err != nil {
		return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// requireRand enforces the RNG contract for stochastic policies.
func requireRand(cfg builderConfig, method string, needed bool) error {
	if needed && cfg.rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}
