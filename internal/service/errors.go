package service

import "errors"

// Sentinel errors returned by service methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidDataProvided is returned when a payload fails validation
	// before any persistence is attempted (missing required fields or
	// unknown enum values).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserDisabled is returned by Authenticate when the credentials match
	// but the account has been disabled.
	ErrUserDisabled = errors.New("user account is disabled")
)
