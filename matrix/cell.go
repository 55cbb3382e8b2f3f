// SPDX-License-Identifier: MIT

package matrix

// Cell is a bounds-checked handle to one element of a Dense.
// It replaces chained indexing (m[i][j] = v): the coordinates are validated
// once when the handle is created and the handle never exposes a raw row.
//
// A Cell follows the matrix it came from: if the matrix is later resized by
// Assign so that (row, col) no longer exists, Get/Set report ErrOutOfRange.
type Cell struct {
	m        *Dense
	row, col int
}

// Cell returns a handle to element (row, col).
// Errors:
//   - ErrOutOfRange when row ≥ Rows(), col ≥ Cols() or either is negative.
//
// Complexity: O(1).
func (m *Dense) Cell(row, col int) (Cell, error) {
	if _, err := m.indexOf(row, col); err != nil {
		return Cell{}, denseErrorf(ctxCell, row, col, err)
	}

	return Cell{m: m, row: row, col: col}, nil
}

// Row reports the handle's row index.
func (c Cell) Row() int { return c.row }

// Col reports the handle's column index.
func (c Cell) Col() int { return c.col }

// Get reads the current value of the element.
func (c Cell) Get() (float64, error) {
	if c.m == nil {
		return 0, denseErrorf(ctxCell, c.row, c.col, ErrNilMatrix)
	}

	return c.m.At(c.row, c.col)
}

// Set writes v into the element, honoring the matrix numeric policy.
func (c Cell) Set(v float64) error {
	if c.m == nil {
		return denseErrorf(ctxCell, c.row, c.col, ErrNilMatrix)
	}

	return c.m.Set(c.row, c.col, v)
}

// Add increments the element by delta (read-modify-write).
func (c Cell) Add(delta float64) error {
	v, err := c.Get()
	if err != nil {
		return err
	}

	return c.Set(v + delta)
}
