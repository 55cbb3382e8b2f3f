// SPDX-License-Identifier: MIT
// Package matrix: element-wise comparison kernels.
//
// Purpose:
//   - Tolerance-based equality used by tests and by callers that check
//     invariants such as toModel·toDevice ≈ I.
//
// Policy:
//   - Inputs must be non-nil with identical shapes (ErrDimensionMismatch otherwise).
//   - Tolerances must be finite (ErrNaNInf otherwise).

package matrix

import "math"

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds element-wise.
// Negative tolerances are normalized to their absolute value.
//
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// Equal reports whether a and b agree element-wise within the absolute
// tolerance resolved from opts (DefaultEpsilon unless WithEpsilon is given).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return ewAllClose(a, b, 0, o.eps)
}

// MaxAbsDiff returns max |a(i,j) - b(i,j)|; useful for reporting drift.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf("MaxAbsDiff", err)
	}
	var worst float64
	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return 0, matrixErrorf("MaxAbsDiff", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return 0, matrixErrorf("MaxAbsDiff", err)
			}
			worst = math.Max(worst, math.Abs(av-bv))
		}
	}

	return worst, nil
}

// ewAllClose is the shared kernel behind AllClose and Equal.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
