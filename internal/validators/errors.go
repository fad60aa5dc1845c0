// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Validation errors. Their messages are returned to the client as-is.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email must start with a letter and be in a valid format")
	ErrEmptyUsername = errors.New("username is required")
	// ErrInvalidUsername is returned for usernames with characters outside
	// letters, digits, '.', '_' and '-', or shorter than two characters.
	ErrInvalidUsername          = errors.New("username may contain only letters, digits, '.', '_' and '-' and must be at least 2 characters long")
	ErrInvalidFullName          = errors.New("full name must not be blank or start or end with a space")
	ErrEmptyPassword            = errors.New("password is required")
	ErrPasswordTooShort         = errors.New("password is too short")
	ErrPasswordTooLong          = errors.New("password must be at most 72 bytes long")
	ErrIncompletePasswordChange = errors.New("both currentPassword and newPassword are required to change the password")
)

// IsValidationError reports whether err originates from this package.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrEmptyEmail, ErrInvalidEmail, ErrEmptyUsername, ErrInvalidUsername,
		ErrInvalidFullName, ErrEmptyPassword, ErrPasswordTooShort, ErrPasswordTooLong,
		ErrIncompletePasswordChange,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
