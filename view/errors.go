// SPDX-License-Identifier: MIT

package view

import "errors"

var (
	// ErrInvalidScale is returned by Scale when a factor is zero, NaN or ±Inf.
	// A zero factor would make the inverse step undefined.
	ErrInvalidScale = errors.New("view: invalid scale factor")

	// ErrNonFinite is returned by Translate and Rotate for NaN or ±Inf input.
	ErrNonFinite = errors.New("view: NaN or Inf parameter")
)
