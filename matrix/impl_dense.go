// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Cell return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders).
//   - Provide value semantics on demand: Clone/Copy are deep, Assign either
//     resizes (fresh buffer) or refreshes values in place (same buffer).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Assign: O(r'*c'); Clear: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxCell   = "Cell"   // method tag used in error wrappers
	ctxApply  = "Apply"  // method tag used in error wrappers
	ctxAssign = "Assign" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtFloatFm = 'g'
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Apply.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: set numeric policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - There is no empty matrix: 0×N and N×0 are rejected.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseWithOptions is NewDense with an explicit numeric policy.
// Options are resolved via gatherOptions; only validateNaNInf applies here.
func NewDenseWithOptions(rows, cols int, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	return newDenseWithPolicy(rows, cols, o.validateNaNInf)
}

// newDenseWithPolicy constructs a Dense then sets validateNaNInf explicitly.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewDenseFrom builds a Dense from row slices (all rows must share a length).
// Values are copied; the input is not retained.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch for ragged input.
//   - ErrNaNInf when a value violates the default numeric policy.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d: %w", i, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read; the returned value is a copy, so the read-only
//     form can never mutate the matrix.
//
// Errors:
//   - ErrOutOfRange when out of bounds (row ≥ Rows or col ≥ Cols or negative).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy) as a Matrix.
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy returns a deep copy with the concrete *Dense type.
// Mutations of the copy never reach the original.
// Complexity: O(r*c).
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Assign makes m an element-wise copy of rhs.
// MAIN DESCRIPTION:
//   - Same shape: overwrite elements in place; the backing buffer is kept, so
//     any holder of m observes the refreshed values.
//   - Different shape: build a complete replacement buffer first, then swap
//     it in together with the new dimensions. m is never left half-resized.
//
// Implementation:
//   - Stage 1: validate rhs is non-nil.
//   - Stage 2: gather rhs values into either m.data (same shape) or a fresh buffer.
//   - Stage 3: on resize, swap dimensions and buffer in one step.
//
// Errors:
//   - ErrNilMatrix when rhs is nil.
//   - Errors from rhs.At for exotic Matrix implementations (m unchanged in the resize case).
//
// Complexity:
//   - Time O(r'*c'), Space O(1) in place or O(r'*c') on resize.
func (m *Dense) Assign(rhs Matrix) error {
	if err := ValidateNotNil(rhs); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
	}
	if src, ok := rhs.(*Dense); ok && src == m {
		return nil // self-assignment is a no-op
	}
	rows, cols := rhs.Rows(), rhs.Cols()
	sameShape := rows == m.r && cols == m.c

	// Stage 2: pick destination buffer.
	dst := m.data
	if !sameShape {
		dst = make([]float64, rows*cols)
	}

	// Dense fast path: flat copy.
	if src, ok := rhs.(*Dense); ok {
		if sameShape {
			copy(m.data, src.data)
			return nil
		}
		copy(dst, src.data)
	} else {
		// In-place refresh from a generic Matrix stages into a scratch
		// buffer so a failing At leaves m untouched.
		if sameShape {
			dst = make([]float64, rows*cols)
		}
		var i, j int
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = rhs.At(i, j); err != nil {
					return fmt.Errorf("Dense.%s: %w", ctxAssign, err)
				}
				dst[i*cols+j] = v
			}
		}
		if sameShape {
			copy(m.data, dst)
			return nil
		}
	}

	// Stage 3: swap in the fully built buffer.
	m.r, m.c, m.data = rows, cols, dst

	return nil
}

// Clear zeroes all elements in place. Shape and buffer identity are kept.
// Complexity: O(r*c).
func (m *Dense) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// String renders one line per row with space-separated elements (%g).
// Intended for diagnostics, e.g.
//
//	1 0 0 5
//	0 1 0 -3
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatFloat(m.data[base+j], _fmtFloatFm, -1, 64))
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Implementation:
//   - Stage 1: compute every new value into a scratch buffer, enforcing the
//     numeric policy.
//   - Stage 2: commit the scratch buffer only if all values were accepted.
//
// Errors:
//   - ErrNaNInf when f produced a non-finite value (policy ON); m is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	scratch := make([]float64, len(m.data))
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			scratch[base+j] = nv
		}
	}
	copy(m.data, scratch)

	return nil
}
