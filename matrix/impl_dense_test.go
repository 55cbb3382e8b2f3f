// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdraw/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(-1, 3)                      // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseDefaultZero verifies every element of a fresh Dense is 0.
func TestNewDenseDefaultZero(t *testing.T) {
	m := MustDense(t, 3, 4)
	m.Do(func(i, j int, v float64) bool {
		require.Zerof(t, v, "element [%d,%d] must be 0", i, j)
		return true
	})
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols

	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // attempt At() with negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // attempt At() with column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // attempt Set() with row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(0, -1, 4.56)                      // attempt Set() with negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3) // create a 2x3 Dense matrix
	require.NoError(t, err)         // ensure valid creation

	err = m.Set(1, 2, 7.89) // set element at row 1, column 2
	require.NoError(t, err) // assert Set() succeeded

	val, err := m.At(1, 2)      // retrieve the set element
	require.NoError(t, err)     // assert At() succeeded
	require.Equal(t, 7.89, val) // assert retrieved value matches set value
}

// TestSetNaNPolicy checks the numeric guard in both policy modes.
func TestSetNaNPolicy(t *testing.T) {
	strict := MustDense(t, 1, 1)
	require.ErrorIs(t, strict.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
	require.Zero(t, MustAt(t, strict, 0, 0)) // rejected writes leave the value alone

	loose, err := matrix.NewDenseWithOptions(1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(-1)))
	require.True(t, math.IsInf(MustAt(t, loose, 0, 0), -1))

	// Clone keeps the policy.
	cp := loose.Copy()
	require.NoError(t, cp.Set(0, 0, math.Inf(1)))
}

// TestNewDenseFrom covers the row-slice constructor.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // validate creation

	// initialize matrix elements to distinct values
	MustSet(t, m, 0, 0, 1.0)
	MustSet(t, m, 1, 1, 2.0)

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))     // expect original remains unchanged
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0)) // expect clone reflects new value

	// And the other direction: mutating the original never reaches the copy.
	cp := m.Copy()
	MustSet(t, m, 1, 1, -5)
	require.Equal(t, 2.0, MustAt(t, cp, 1, 1))
}

// TestAssign covers same-shape refresh, resize, generic sources and nil.
func TestAssign(t *testing.T) {
	dst := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	src := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	require.NoError(t, dst.Assign(src))
	CompareExact(t, [][]float64{{5, 6}, {7, 8}}, dst)

	// Source stays independent after assignment.
	MustSet(t, src, 0, 0, 100)
	require.Equal(t, 5.0, MustAt(t, dst, 0, 0))

	// Resize to a 4×1 point-like shape.
	tall := NewFilledDense(t, 4, 1, []float64{9, 8, 7, 1})
	require.NoError(t, dst.Assign(tall))
	require.Equal(t, 4, dst.Rows())
	require.Equal(t, 1, dst.Cols())
	CompareExact(t, [][]float64{{9}, {8}, {7}, {1}}, dst)

	// Generic source goes through At.
	require.NoError(t, dst.Assign(hide{src}))
	CompareExact(t, [][]float64{{100, 6}, {7, 8}}, dst)

	// Self-assignment is a no-op.
	require.NoError(t, dst.Assign(dst))
	CompareExact(t, [][]float64{{100, 6}, {7, 8}}, dst)

	require.ErrorIs(t, dst.Assign(nil), matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	require.ErrorIs(t, dst.Assign(typedNil), matrix.ErrNilMatrix)
}

// TestClearKeepsShape verifies Clear zeroes values only.
func TestClearKeepsShape(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	m.Clear()
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, m)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.Equal(t, "1 2\n3 4\n", m.String())

	p := NewFilledDense(t, 1, 3, []float64{0.5, -3, 1e21})
	require.Equal(t, "0.5 -3 1e+21\n", p.String())
}

// TestDoEarlyStop ensures Do stops when the visitor returns false.
func TestDoEarlyStop(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestApplyAllOrNothing verifies Apply commits only when every value is accepted.
func TestApplyAllOrNothing(t *testing.T) {
	m := NewFilledDense(t, 1, 3, []float64{1, 0, 2})
	err := m.Apply(func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	CompareExact(t, [][]float64{{1, 0, 2}}, m) // untouched

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	CompareExact(t, [][]float64{{10, 0, 20}}, m)
}

// TestCellHandle covers the bounds-checked element handle.
func TestCellHandle(t *testing.T) {
	m := MustDense(t, 3, 3)
	c, err := m.Cell(1, 2)
	require.NoError(t, err)
	require.Equal(t, 1, c.Row())
	require.Equal(t, 2, c.Col())

	require.NoError(t, c.Set(4))
	require.NoError(t, c.Add(0.5))
	v, err := c.Get()
	require.NoError(t, err)
	require.Equal(t, 4.5, v)
	require.Equal(t, 4.5, MustAt(t, m, 1, 2))

	_, err = m.Cell(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// Handle follows a resize and reports the lost coordinate.
	require.NoError(t, m.Assign(MustDense(t, 1, 1)))
	_, err = c.Get()
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	var zero matrix.Cell
	_, err = zero.Get()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, zero.Set(1), matrix.ErrNilMatrix)
}
