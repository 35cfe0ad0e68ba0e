// SPDX-License-Identifier: MIT
// Package: tollway/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator (Path, RandomGeometric).
// Grid always uses "r,c". Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithSpacing scales all generated coordinates. Panics unless s > 0 and finite.
func WithSpacing(s float64) BuilderOption {
	if !(s > 0) || math.IsInf(s, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%v): must be > 0 and finite", s))
	}

	return func(c *builderConfig) { c.spacing = s }
}

// WithTollProbability makes each edge tolled with probability p.
// Panics unless 0 <= p <= 1.
func WithTollProbability(p float64) BuilderOption {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("builder: WithTollProbability(%v): must be in [0,1]", p))
	}

	return func(c *builderConfig) { c.tollProb = p }
}

// WithTollFraction draws each toll uniformly from [min, max] × weight.
// Panics unless 0 <= min <= max <= 1.
func WithTollFraction(min, max float64) BuilderOption {
	if !(min >= 0 && min <= max && max <= 1) {
		panic(fmt.Sprintf("builder: WithTollFraction(%v, %v): need 0 <= min <= max <= 1", min, max))
	}

	return func(c *builderConfig) { c.tollMin, c.tollMax = min, max }
}

// WithDetour stretches each edge weight by a factor drawn from [1, max], so
// roads are never shorter than the straight line. Panics unless max >= 1.
func WithDetour(max float64) BuilderOption {
	if !(max >= 1) || math.IsInf(max, 0) {
		panic(fmt.Sprintf("builder: WithDetour(%v): must be >= 1 and finite", max))
	}

	return func(c *builderConfig) { c.detourMax = max }
}
