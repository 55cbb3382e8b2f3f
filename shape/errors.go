// SPDX-License-Identifier: MIT

package shape

import "errors"

var (
	// ErrVertexCount indicates a vertex matrix with the wrong number of
	// columns for the requested kind.
	ErrVertexCount = errors.New("shape: wrong vertex count")

	// ErrUnknownKind indicates a Kind outside Point..Circle.
	ErrUnknownKind = errors.New("shape: unknown kind")

	// ErrNilContext indicates Draw was called without a view context.
	ErrNilContext = errors.New("shape: nil view context")
)
