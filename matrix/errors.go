// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (optionally wrapped with
// operation context via %w) and tests check them via errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Wrap with context at the detection site
// (denseErrorf / matrixErrorf / validatorErrorf); callers still match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> numeric policy.

var (
	// ErrInvalidDimensions is returned when requested dimensions are non-positive
	// (rows < 1 or cols < 1). Constructors validate before allocating.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public accessors (At/Set/Cell) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Apply, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
