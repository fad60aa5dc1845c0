// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/bliss/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user accounts.
//
// Lookups that find no row return [ErrUserNotFound]. Writes that collide
// with an existing username or email return [ErrUsernameAlreadyExists] or
// [ErrEmailAlreadyExists].
type UserRepository interface {
	// CreateUser inserts user (ID and PasswordHash must be set) and returns
	// the stored record without the password hash.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the public projection of the user: every field
	// except PasswordHash.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// FindUserByUsername returns the full record including PasswordHash.
	// It is meant for credential checks only.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindCredentialsByID returns the stored password hash of the user.
	FindCredentialsByID(ctx context.Context, userID string) (string, error)

	// UpdateUser writes the non-nil fields of update and returns the
	// resulting record without the password hash.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ErrorClassificator decides how a failed statement is handled by a
// particular database dialect.
type ErrorClassificator interface {
	// Classify tells whether the statement may succeed if attempted again.
	Classify(err error) ErrorClassification

	// ConflictColumn returns the column of a violated unique constraint.
	ConflictColumn(err error) (string, bool)
}
