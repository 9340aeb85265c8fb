package models

import "time"

// Session represents a logged-in session, created on successful login.
// The token is an opaque string, globally unique and immutable once issued.
// No expiry is tracked; a session stays valid until its row is removed.
type Session struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	// Token is the opaque credential presented by the client on subsequent
	// requests (via the login cookie).
	Token string `json:"token"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`

	// User is the sanitized view of the session's owner, embedded in the
	// session-creation response so the client learns who logged in.
	User *User `json:"user,omitempty"`
}

func (s Session) TableName() string {
	return "session"
}

// SessionPayload is the raw body of POST /v1/session. The login
// pre-processing step exchanges Username/Password for UserID and strips the
// credential fields; a payload still missing UserID afterwards fails
// validation.
type SessionPayload struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	UserID   int64  `json:"user_id,omitempty"`
}
