// Package service provides technical services for authentication operations.
//
// This package implements reusable services for password hashing and stateless
// session token issuance using industry-standard cryptographic practices.
package service

import "time"

// PasswordService defines operations for password hashing and verification.
// Implementations must use a memory-hard hashing algorithm (e.g., argon2)
// and constant-time comparison during verification.
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	// The returned string is self-describing: it embeds the algorithm
	// parameters and salt needed for later verification.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plain text password against a stored hash.
	// Returns true only on a match; malformed or corrupted hashes
	// return false rather than an error.
	Verify(plainPassword string, hashedPassword string) bool
}

// SessionService defines operations for stateless session token issuance and
// validation. Tokens are self-contained: validation requires no storage
// lookup, only the signing key.
type SessionService interface {
	// Issue creates a signed session token for the given subject.
	// Returns the encoded token and its expiration time.
	Issue(subject string) (token string, expiresAt time.Time, err error)

	// Validate verifies a session token's signature and time claims and
	// returns the subject it was issued for. Returns
	// domain.ErrExpiredSessionToken for expired tokens and
	// domain.ErrInvalidSessionToken for all other validation failures.
	Validate(token string) (subject string, err error)
}
