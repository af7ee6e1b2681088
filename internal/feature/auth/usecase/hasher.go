package usecase

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher abstracts one-way password hashing and verification.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider.
type PasswordHasher interface {
	// Hash produces a salted, one-way digest of the plaintext password.
	// The same plaintext yields a different digest on every call.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext matches the digest.
	// A malformed digest is a verification failure, not an error: mismatch
	// and integrity failures are indistinguishable to the caller.
	Verify(password, digest string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt at the default cost.
type BcryptHasher struct{}

// NewBcryptHasher creates a new BcryptHasher.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

// Hash produces a salted bcrypt digest of the password.
func (BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the digest.
// bcrypt compares in constant time; malformed digests simply fail.
func (BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
