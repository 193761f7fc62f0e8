// Package utils provides general-purpose helper utilities used across
// different parts of the application: password hashing, session token
// generation and validation, UUID generation, and HTTP response writing.
package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a bcrypt hash from the given plaintext password.
//
// The salt is generated randomly and embedded in the output, so hashing the
// same plaintext twice yields different strings. cost is the bcrypt work
// factor; values below bcrypt.MinCost fall back to bcrypt.DefaultCost (10).
//
// The returned string is safe to persist. The plaintext must never be
// stored or logged.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is performed by bcrypt in constant time; the
// hash is never decrypted.
func VerifyPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
