// SPDX-License-Identifier: MIT
// Package: tollway/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w: "<Method>: <detail>: %w".
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrOptionViolation → ErrNeedRandSource → ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrOptionViolation indicates a parameter that can only be checked when the
// constructor runs (e.g. a non-positive or NaN radius).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrNeedRandSource indicates that a stochastic policy (tolls, detours,
// random placement) is active but no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not run a constructor
// (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
