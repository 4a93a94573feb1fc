// Package auth holds credential helpers for passwords and tokens.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword for a wrong password.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword returns the bcrypt hash of password. Passwords longer than
// 72 bytes are rejected by bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword returns nil when password matches hash and
// ErrPasswordMismatch when it does not. A malformed hash is any other error.
func CheckPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("check password: %w", err)
	}
}

// HashRandomPassword hashes an unguessable password, for accounts that sign
// in through a third party and never set one.
func HashRandomPassword() (string, error) {
	password, err := RandomToken(16)
	if err != nil {
		return "", err
	}
	return HashPassword(password)
}
