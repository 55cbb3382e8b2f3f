// SPDX-License-Identifier: MIT

package surface

import "errors"

var (
	// ErrInvalidSize is returned by New for non-positive dimensions.
	ErrInvalidSize = errors.New("surface: width and height must be > 0")

	// ErrInvalidColor is returned by ParseColor for unparsable input.
	ErrInvalidColor = errors.New("surface: invalid color")

	// ErrInvalidUpscale is returned by Save for a factor < 1.
	ErrInvalidUpscale = errors.New("surface: upscale factor must be >= 1")
)
