// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file holds the public Matrix interface implemented by *Dense and
// consumed by the kernels (Add, Mul, Transpose, ...). Errors and options
// live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns errors on misuse.
//
// Complexity notes: all methods are O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// HomogeneousRows is the row count of a homogeneous point set (x, y, z, w).
const HomogeneousRows = 4

// Homogeneous row indices.
const (
	RowX = 0
	RowY = 1
	RowZ = 2
	RowW = 3
)
