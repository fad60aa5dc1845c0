// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/bliss/internal/config"
)

// credentialHasher hashes with the configured algorithm and verifies by
// looking at the prefix of the stored hash.
type credentialHasher struct {
	primary CredentialHasher
	bcrypt  *bcryptHasher
	argon2  *argon2idHasher
}

// NewCredentialHasher builds the hasher selected by cfg.PasswordHashAlgorithm.
// An empty algorithm means bcrypt.
func NewCredentialHasher(cfg config.Auth) (CredentialHasher, error) {
	h := &credentialHasher{
		bcrypt: newBcryptHasher(cfg.PasswordHashCost),
		argon2: newArgon2idHasher(),
	}

	switch cfg.PasswordHashAlgorithm {
	case config.HashAlgorithmBcrypt, "":
		h.primary = h.bcrypt
	case config.HashAlgorithmArgon2id:
		h.primary = h.argon2
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, cfg.PasswordHashAlgorithm)
	}

	return h, nil
}

// Hash applies the bcrypt length limit to every algorithm, so switching
// algorithms never changes which passwords are accepted.
func (h *credentialHasher) Hash(password string) (string, error) {
	if len(password) > maxPasswordLength {
		return "", ErrInvalidPassword
	}
	return h.primary.Hash(password)
}

func (h *credentialHasher) Verify(hash, password string) (bool, error) {
	switch {
	case isBcryptHash(hash):
		return h.bcrypt.Verify(hash, password)
	case strings.HasPrefix(hash, argon2idPrefix):
		return h.argon2.Verify(hash, password)
	default:
		return false, ErrMalformedHash
	}
}
