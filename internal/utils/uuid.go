package utils

import "github.com/google/uuid"

// NewToken returns a fresh opaque identifier, used for session tokens and
// record trails. Time-ordered v7 UUIDs keep index locality; the random v4
// fallback only fires if the system clock source fails.
func NewToken() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
