// SPDX-License-Identifier: MIT
// Package matrix: named constructors and homogeneous point-set helpers.
//
// NewIdentity and NewZeros state the intent of a matrix instead of bare
// dimensions. NewPoints, PointsFromXY, PointXY and SetPointXY treat a 4×N
// Dense as N points (x, y, z, w), the form view.Context transforms.

package matrix

import "fmt"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n^2) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Homogeneous point sets ----------

// NewPoints returns a 4×n homogeneous point set with every point at the
// origin: x = y = z = 0 and w = 1.
// Errors: ErrInvalidDimensions when n < 1.
func NewPoints(n int) (*Dense, error) {
	p, err := NewDense(HomogeneousRows, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		p.data[RowW*n+j] = 1.0
	}

	return p, nil
}

// PointsFromXY builds a 4×len(xy) homogeneous point set, one column per (x, y),
// with z = 0 and w = 1.
//
// Errors: ErrInvalidDimensions for an empty input; ErrNaNInf for non-finite coordinates.
func PointsFromXY(xy ...[2]float64) (*Dense, error) {
	p, err := NewPoints(len(xy))
	if err != nil {
		return nil, err
	}
	for j, v := range xy {
		if err = p.Set(RowX, j, v[0]); err != nil {
			return nil, fmt.Errorf("PointsFromXY: %w", err)
		}
		if err = p.Set(RowY, j, v[1]); err != nil {
			return nil, fmt.Errorf("PointsFromXY: %w", err)
		}
	}

	return p, nil
}

// PointXY reads column col of a homogeneous point set as (x, y).
// The w component is ignored (affine point sets keep w = 1).
func PointXY(p Matrix, col int) (x, y float64, err error) {
	if err = ValidateHomogeneous(p); err != nil {
		return 0, 0, matrixErrorf("PointXY", err)
	}
	if x, err = p.At(RowX, col); err != nil {
		return 0, 0, matrixErrorf("PointXY", err)
	}
	if y, err = p.At(RowY, col); err != nil {
		return 0, 0, matrixErrorf("PointXY", err)
	}

	return x, y, nil
}

// SetPointXY writes (x, y) into column col of a homogeneous point set.
func SetPointXY(p Matrix, col int, x, y float64) error {
	if err := ValidateHomogeneous(p); err != nil {
		return matrixErrorf("SetPointXY", err)
	}
	if err := p.Set(RowX, col, x); err != nil {
		return matrixErrorf("SetPointXY", err)
	}
	if err := p.Set(RowY, col, y); err != nil {
		return matrixErrorf("SetPointXY", err)
	}

	return nil
}
