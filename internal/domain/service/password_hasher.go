// Package service defines the contracts the use case layer depends on:
// the identity backend, session storage, audit and the primitives the
// built-in backend is assembled from.
package service

// PasswordHasher hashes and verifies passwords for the built-in backend.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}

// PasswordValidator enforces the password policy on new passwords.
type PasswordValidator interface {
	// ValidatePasswordStrength returns errors.ErrPasswordStrength with the
	// failed rule as details.
	ValidatePasswordStrength(password string) error
}
