// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the server-side password hashing used by the account
// service. Two algorithms are supported: bcrypt (the default) and Argon2id.
// Hashes are self-describing, so a hasher configured for one algorithm still
// verifies hashes produced by the other.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_hasher_mock.go -package=mock

// CredentialHasher derives and checks one-way password hashes.
type CredentialHasher interface {
	// Hash returns a salted, encoded hash of password. Two calls with the
	// same password return different strings. Returns ErrInvalidPassword for
	// an empty password or one longer than 72 bytes, whatever the algorithm.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error is returned only when hash cannot be decoded.
	Verify(hash, password string) (bool, error)
}
