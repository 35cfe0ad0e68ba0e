// SPDX-License-Identifier: MIT
// Package: tollway/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn ("0","1","2",...)
//   • rng         = nil (pure/deterministic unless seeded)
//   • spacing     = 1.0
//   • tollProb    = 0   (no tolls)
//   • tollMin/Max = 0.25 / 0.75 of the edge weight
//   • detourMax   = 1   (weight == straight-line distance)

package builder

import "golang.org/x/exp/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	spacing   float64 // distance between neighboring grid/path points
	tollProb  float64 // chance an edge carries a toll, in [0,1]
	tollMin   float64 // toll as a fraction of weight, lower bound
	tollMax   float64 // toll as a fraction of weight, upper bound
	detourMax float64 // weight = distance × U[1, detourMax]
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultSpacing         = 1.0
	DefaultTollFractMin    = 0.25
	DefaultTollFractMax    = 0.75
	DefaultDetourFactor    = 1.0
	DefaultTollProbability = 0.0
)

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		spacing:   DefaultSpacing,
		tollProb:  DefaultTollProbability,
		tollMin:   DefaultTollFractMin,
		tollMax:   DefaultTollFractMax,
		detourMax: DefaultDetourFactor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stochastic reports whether edge attributes need the RNG.
func (c builderConfig) stochastic() bool {
	return c.tollProb > 0 || c.detourMax > 1
}
