package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to create a user
	// fails because a user with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned by the credential lookup when no user
	// matches both the username and the digest: absence is a normal outcome
	// of a login attempt, not a fault. Lookups by id use ErrRecordNotFound.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRecordNotFound is returned when a single-record query or a
	// targeted update/delete matches no row.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrAssociationAlreadyExists is returned when inserting an association
	// violates the (opportunity_id, user_id) primary key: a user holds at
	// most one relationship per opportunity.
	ErrAssociationAlreadyExists = errors.New("association already exists for this user and opportunity")

	// ErrSessionNotFound is returned when a session lookup by token matches
	// no row; the presented credential is stale or forged.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrInvalidReference is returned when an insert or update points at a
	// missing row via a foreign key, e.g. an opportunity whose contributor
	// id names no user.
	ErrInvalidReference = errors.New("referenced record does not exist")
)
