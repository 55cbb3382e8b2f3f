// SPDX-License-Identifier: MIT

// Package matrix provides a dense float64 matrix and the linear-algebra
// kernels needed by an affine 2D pipeline.
//
// The matrix package provides:
//
//   - Dense: row-major storage with bounds-checked At/Set and Cell handles,
//     deep Copy/Clone, Assign (in-place refresh or resize), Clear, String.
//   - Kernels: Add, Sub, Mul, MulChain, Transpose, Scale/ScaleBy. Every
//     kernel validates first and returns a fresh *Dense; inputs are never
//     mutated.
//   - Named constructors: NewIdentity, NewZeros, NewPoints, PointsFromXY.
//   - Comparison: AllClose, Equal (tolerance from WithEpsilon), MaxAbsDiff.
//
// Homogeneous point sets are 4×N matrices (rows x, y, z, w) with one column
// per vertex; see NewPoints and PointXY.
//
// Errors are package sentinels (ErrInvalidDimensions, ErrDimensionMismatch,
// ErrOutOfRange, ErrNilMatrix, ErrNaNInf) wrapped with operation context;
// match them with errors.Is.
//
// Dense values are not safe for concurrent mutation.
package matrix
