// Package password handles the administrator secret, which may be configured as plain text or as a
// bcrypt hash produced by jamatctl hash-password.
package password

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultCost = bcrypt.DefaultCost

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify returns ErrInvalidPassword on a mismatch and a wrapped error when hash is not bcrypt.
func Verify(plain, hash string) error {
	if plain == "" || hash == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))

	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrInvalidPassword
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}

// IsHash reports whether value parses as a bcrypt hash.
func IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))

	return err == nil
}

// Matches compares a submitted password against the configured secret in constant time.
func Matches(submitted, configured string) bool {
	if submitted == "" || configured == "" {
		return false
	}

	if IsHash(configured) {
		return Verify(submitted, configured) == nil
	}

	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}
