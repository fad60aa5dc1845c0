// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them
// aborts startup.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was configured.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrWeakTokenSignKey indicates a signing secret shorter than 32 bytes.
	ErrWeakTokenSignKey = errors.New("token sign key must be at least 32 bytes long")
	// ErrInvalidAuthConfigs indicates invalid token or password settings
	// (for example, a non-positive token duration or unknown hash algorithm).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidSessionConfigs indicates invalid cookie settings.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid transport settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates an unknown environment.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)

// minTokenSignKeyLength is the shortest accepted HMAC-SHA256 secret.
const minTokenSignKeyLength = 32
