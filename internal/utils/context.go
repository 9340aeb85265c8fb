// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, token generation, and other common operations.
package utils

import (
	"context"

	"github.com/tapteam/tap-server/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// PrincipalCtxKey is the key under which the request's security context —
// the authenticated user — is stored. A request whose context carries no
// principal is anonymous.
var PrincipalCtxKey = contextKey("principal")

// WithPrincipal returns a copy of ctx carrying user as the authenticated
// principal for the remainder of the request lifecycle.
func WithPrincipal(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, PrincipalCtxKey, user)
}

// PrincipalFromContext retrieves the authenticated principal from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — the request presented a valid session credential
//   - ok == false — the request is anonymous
func PrincipalFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(PrincipalCtxKey).(models.User)
	return user, ok
}
