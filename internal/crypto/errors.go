// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidPassword is returned by Hash for input that cannot be hashed.
	ErrInvalidPassword = errors.New("password cannot be hashed")
	// ErrMalformedHash is returned by Verify for a stored hash that cannot be decoded.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrUnsupportedAlgorithm is returned by NewCredentialHasher for an unknown algorithm name.
	ErrUnsupportedAlgorithm = errors.New("unsupported password hash algorithm")
)
