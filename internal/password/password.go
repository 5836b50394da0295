// Package password hashes and verifies user passwords with bcrypt.
package password

import (
	"github.com/talkboard-dev/talkboard/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns a salted bcrypt hash of the plaintext. Hashing the same
// plaintext twice yields different strings; compare with Verify only.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. It returns
// false for malformed hashes instead of erroring: the stored value may be
// attacker-influenced and a mismatch is a mismatch either way.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
