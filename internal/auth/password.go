// Package auth implements password digest derivation and authorization
// decisions for the application.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes       = 16
	pbkdf2Iter      = 4096
	pbkdf2KeyLength = 32
)

// NewSalt returns a fresh random per-user salt, hex encoded. The salt is
// generated once at user creation and only replaced when the password itself
// changes.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Digest derives the stored password digest from the plaintext, the per-user
// salt and the application-wide pepper. The derivation is deterministic for a
// fixed (plaintext, salt, pepper) triple and not reversible.
func Digest(plaintext, salt, pepper string) string {
	key := pbkdf2.Key([]byte(plaintext), []byte(salt+pepper), pbkdf2Iter, pbkdf2KeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// VerifyPassword recomputes the digest for the supplied plaintext and compares
// it against the stored digest in constant time.
func VerifyPassword(plaintext, salt, pepper, encrypted string) bool {
	computed := Digest(plaintext, salt, pepper)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(encrypted)) == 1
}
