package models

import "time"

// User account types. Admins may edit or delete any opportunity; contributors
// may create opportunities and edit their own.
const (
	UserTypeAdmin       = "admin"
	UserTypeContributor = "contributor"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// The stored password digest must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique login identifier, used during authentication.
	Username string `json:"username"`

	// FirstName and LastName are display attributes, non-sensitive.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	// Email is the user's contact address.
	Email string `json:"email"`

	// Enabled marks whether the account may log in. Accounts are never
	// hard-deleted; they are disabled instead.
	Enabled bool `json:"enabled"`

	// Type is one of UserTypeAdmin or UserTypeContributor.
	Type string `json:"type"`

	// Password carries the plaintext password on signup input only.
	// After hashing it holds the stored digest and is stripped from every
	// response via Public.
	Password string `json:"password,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Public returns a copy of the user safe to serialize in API responses:
// the password digest is removed.
func (u User) Public() User {
	u.Password = ""
	return u
}

// ValidType reports whether the user's Type field holds a known role.
func (u User) ValidType() bool {
	return u.Type == UserTypeAdmin || u.Type == UserTypeContributor
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}

// UserUpdate describes a partial update (PATCH) of a user record.
// Nil fields are left untouched.
type UserUpdate struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Enabled   *bool   `json:"enabled"`
	Type      *string `json:"type"`
	Password  *string `json:"password"`
}
