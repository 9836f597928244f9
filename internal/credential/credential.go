// Package credential implements the password gate for editing a listing.
//
// A listing stores hex(sha256(trim(password))). The scheme has no salt and no
// lockout; existing hashes depend on it, so it must not change.
package credential

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Hash returns the lowercase hex SHA-256 digest of the trimmed password.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(password)))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to storedHash.
func Verify(password, storedHash string) bool {
	computed := Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
