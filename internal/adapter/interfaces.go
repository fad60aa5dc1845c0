// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the bliss account API.
//
// [AccountClient] hides the HTTP transport: the session cookie returned by
// Signup and Login is kept in the client's cookie jar and sent with every
// following request, so callers never handle the token themselves.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so that callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's {"error": ...} message is kept in
// the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/bliss/models"
)

// AccountClient talks to the account endpoints of a bliss server.
type AccountClient interface {
	// Signup creates an account and starts a session for it.
	Signup(ctx context.Context, request models.SignupRequest) (models.PublicProfile, error)

	// Login starts a session for an existing account.
	Login(ctx context.Context, request models.LoginRequest) (models.PublicProfile, error)

	// Logout ends the current session. It succeeds without a session too.
	Logout(ctx context.Context) error

	// Me returns the profile of the session owner.
	Me(ctx context.Context) (models.PublicProfile, error)

	// UpdateProfile applies a partial update to the session owner's profile
	// and returns the updated profile.
	UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.PublicProfile, error)
}
