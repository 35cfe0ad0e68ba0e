// SPDX-License-Identifier: MIT

// File: options.go
// Functional configuration for matrix→graph ingestion.
//
// Options carry the optional parallel data (tolls, coordinates) and the
// numeric tolerance used by the symmetry check. Invalid parameters panic in
// the WithX constructor (programmer error); data-shape problems are reported
// as errors by FromMatrix.

package matrix

import (
	"math"

	"github.com/katalvlaran/tollway/core"
)

// DefaultEpsilon is the tolerance for symmetry checks between w[i][j] and w[j][i].
const DefaultEpsilon = 1e-9

// Option configures FromMatrix.
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use WithX.
type Options struct {
	tolls   [][]float64
	points  []core.Point
	epsilon float64
}

// WithTolls supplies a toll matrix parallel to the weight matrix.
// Entries for absent edges are ignored.
func WithTolls(t [][]float64) Option {
	return func(o *Options) { o.tolls = t }
}

// WithPoints supplies one coordinate per vertex, in ids order.
func WithPoints(p []core.Point) Option {
	return func(o *Options) { o.points = p }
}

// WithEpsilon sets the symmetry tolerance. Panics on a negative or NaN value.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("matrix: WithEpsilon requires a non-negative value")
	}

	return func(o *Options) { o.epsilon = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
