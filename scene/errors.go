// SPDX-License-Identifier: MIT

package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates scene text that cannot be decoded: a truncated
	// block, an unparsable number or a missing "Begin Image".
	ErrMalformed = errors.New("scene: malformed input")

	// ErrUnknownShape indicates a "Begin X" block naming no known shape kind.
	ErrUnknownShape = errors.New("scene: unknown shape")

	// ErrNilShape indicates Add was passed a nil shape.
	ErrNilShape = errors.New("scene: nil shape")
)

// lineErrorf wraps err with a 1-based input line number.
func lineErrorf(line int, err error, format string, args ...any) error {
	return fmt.Errorf("scene: line %d: %s: %w", line, fmt.Sprintf(format, args...), err)
}
