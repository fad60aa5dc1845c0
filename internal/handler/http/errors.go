// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingSessionToken is logged by the auth gateway when the request
	// carries no session cookie. The client only sees "unauthorized".
	ErrMissingSessionToken = errors.New("no session token in request")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoUserInContext means a protected handler ran without the gateway.
	ErrNoUserInContext = errors.New("no authenticated user in request context")
)
