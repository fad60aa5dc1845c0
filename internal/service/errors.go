// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request cannot be processed
	// as given, e.g. a password the hasher refuses.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown username and
	// for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated wraps every token verification failure.
	ErrUnauthenticated = errors.New("unauthorized")

	// ErrWrongCurrentPassword is returned by UpdateProfile when the current
	// password does not match the stored hash.
	ErrWrongCurrentPassword = errors.New("current password is incorrect")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
