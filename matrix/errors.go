// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is.
// Core construction errors (core.ErrInvalidWeight, core.ErrInvalidToll,
// core.ErrDuplicateVertex, ...) surface unchanged through FromMatrix.
//
// ERROR PRIORITY (documented, enforced in tests):
// graph nil -> shape -> dimension mismatch -> structural violations
// (diagonal, symmetry) -> core construction errors.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates that ids, weights, tolls or points disagree in length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonZeroDiagonal signals a diagonal entry other than 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals that a weight or toll matrix is not symmetric within eps.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrUnknownVertex indicates that a referenced vertex ID is not in the matrix index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrNilMatrix indicates that a nil *AdjacencyMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
