// SPDX-License-Identifier: MIT

package session

import "errors"

// ErrUnknownKey indicates a key name ParseKey cannot map.
var ErrUnknownKey = errors.New("session: unknown key")
