// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used while decoding requests. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when an {id} route parameter is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid record id")
)
