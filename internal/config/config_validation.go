// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violation is
// reported; the returned error matches each violated sentinel via errors.Is.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.App.Environment {
	case EnvironmentDevelopment, EnvironmentProduction:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment))
	}

	switch {
	case cfg.Auth.TokenSignKey == "":
		errs = append(errs, ErrMissingTokenSignKey)
	case len(cfg.Auth.TokenSignKey) < minTokenSignKeyLength:
		errs = append(errs, ErrWeakTokenSignKey)
	}

	if cfg.Auth.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs))
	}
	if cfg.Auth.MinPasswordLength < 1 {
		errs = append(errs, fmt.Errorf("%w: min password length must be positive", ErrInvalidAuthConfigs))
	}
	switch cfg.Auth.PasswordHashAlgorithm {
	case HashAlgorithmBcrypt:
		if cfg.Auth.PasswordHashCost < bcrypt.MinCost || cfg.Auth.PasswordHashCost > bcrypt.MaxCost {
			errs = append(errs, fmt.Errorf("%w: bcrypt cost must be in range %d..%d",
				ErrInvalidAuthConfigs, bcrypt.MinCost, bcrypt.MaxCost))
		}
	case HashAlgorithmArgon2id:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported hash algorithm %q",
			ErrInvalidAuthConfigs, cfg.Auth.PasswordHashAlgorithm))
	}

	if cfg.Session.CookieName == "" {
		errs = append(errs, fmt.Errorf("%w: empty cookie name", ErrInvalidSessionConfigs))
	}
	switch strings.ToLower(cfg.Session.SameSite) {
	case SameSiteStrict, SameSiteLax:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported same-site policy %q",
			ErrInvalidSessionConfigs, cfg.Session.SameSite))
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
