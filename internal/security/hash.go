// Package security provides the password hashing capability.
package security

import "github.com/alexedwards/argon2id"

// PasswordHasher abstracts the password credential handling.
// The data service only ever stores and compares opaque credentials; callers
// decide the concrete algorithm.
type PasswordHasher interface {
	// Hash derives an opaque credential from a plaintext password.
	Hash(password string) (string, error)
	// Verify reports whether the plaintext password matches the stored credential.
	Verify(password, credential string) (bool, error)
}

// Argon2Hasher implements PasswordHasher using the Argon2id algorithm.
type Argon2Hasher struct{}

// NewArgon2Hasher creates the default Argon2id based hasher.
func NewArgon2Hasher() Argon2Hasher {
	return Argon2Hasher{}
}

// Hash hashes a plaintext password using the Argon2id algorithm with default parameters.
func (Argon2Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, argon2id.DefaultParams) //nolint:wrapcheck
}

// Verify compares a plaintext password against an Argon2id hash.
// It uses constant-time comparison to prevent timing attacks.
func (Argon2Hasher) Verify(password, credential string) (bool, error) {
	return argon2id.ComparePasswordAndHash(password, credential) //nolint:wrapcheck
}
