package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword computes the stored digest for a plaintext password:
// hex(SHA-256(password + secret)).
//
// The transform is deterministic — no per-call randomness — so digests
// written at signup remain directly comparable at login. The secret is a
// single server-wide value; there is no per-user salt. This matches the
// digest format of the data already in production and must not change
// without a migration of every stored password.
func HashPassword(password, secret string) string {
	sum := sha256.Sum256([]byte(password + secret))
	return hex.EncodeToString(sum[:])
}
