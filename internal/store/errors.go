// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a write fails because another
	// user already holds the same username.
	ErrUsernameAlreadyExists = errors.New("username is already taken")

	// ErrEmailAlreadyExists is returned when a write fails because another
	// user already holds the same email.
	ErrEmailAlreadyExists = errors.New("email is already taken")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("user not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDriver is returned by [NewConnectDB] for a driver other
	// than postgres or sqlite.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
