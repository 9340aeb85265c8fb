package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashPassword_Deterministic verifies that the same (password, secret)
// pair always yields the same digest.
func TestHashPassword_Deterministic(t *testing.T) {
	a := HashPassword("correct horse", "server-secret")
	b := HashPassword("correct horse", "server-secret")
	assert.Equal(t, a, b)
}

// TestHashPassword_KnownDigest pins the digest format: hex(SHA-256(pw+secret)).
// The golden value guards compatibility with digests already stored in the
// database.
func TestHashPassword_KnownDigest(t *testing.T) {
	// sha256("correctsecret")
	const want = "dd47832c864d4c2ba83c4cc80941b4c7ea8346ed12cf0416f19931bd4183eafe"

	got := HashPassword("correct", "secret")
	require.Len(t, got, 64, "digest must be hex-encoded SHA-256")
	assert.Equal(t, want, got)
}

// TestHashPassword_InputSensitivity verifies that changing either the
// password or the secret changes the digest.
func TestHashPassword_InputSensitivity(t *testing.T) {
	base := HashPassword("password", "secret")

	assert.NotEqual(t, base, HashPassword("password2", "secret"))
	assert.NotEqual(t, base, HashPassword("password", "secret2"))
}

// TestHashPassword_ConcatenationBoundary verifies that password/secret
// concatenation is position-dependent: ("ab","c") and ("a","bc") produce the
// same digest by construction, which callers must not rely on for security
// but the behaviour is pinned here deliberately.
func TestHashPassword_ConcatenationBoundary(t *testing.T) {
	assert.Equal(t, HashPassword("ab", "c"), HashPassword("a", "bc"))
}
