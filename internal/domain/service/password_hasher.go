// Package service declares the domain capabilities implemented in infra:
// hashing, token and QR code generation, and event publishing.
package service

// PasswordHasher turns plaintext passwords into stored hashes and verifies them.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Inputs the algorithm cannot
	// accept are reported as a validation error.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
