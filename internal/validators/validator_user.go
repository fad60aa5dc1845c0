// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/bliss/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldEmail    = "email"
	FieldUsername = "username"
	FieldFullName = "full_name"
	FieldPassword = "password"

	// FieldPasswordPair checks that currentPassword and newPassword of an
	// update request are either both present or both absent.
	FieldPasswordPair = "password_pair"

	// FieldNewPassword applies the password policy to the newPassword of an
	// update request.
	FieldNewPassword = "new_password"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._%+-]*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9._-]{2,}$`)
)

// UserValidator implements the Validator interface for account requests:
// SignupRequest, LoginRequest and UpdateProfileRequest.
//
// It supports both value and pointer forms of every model and allows
// optional field-level scoping via variadic field name arguments.
type UserValidator struct {
	minPasswordLength int
}

// NewUserValidator constructs a UserValidator enforcing the given minimum
// password length (in characters) and returns it as the Validator interface.
func NewUserValidator(minPasswordLength int) Validator {
	return &UserValidator{minPasswordLength: minPasswordLength}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignup checks every field of a signup request.
//
// Default validated fields: Email, Username, FullName, Password.
func (v *UserValidator) validateSignup(_ context.Context, request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldFullName, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = validateEmail(request.Email)
		case FieldUsername:
			err = validateUsername(request.Username)
		case FieldFullName:
			err = validateFullName(request.FullName)
		case FieldPassword:
			err = v.validatePassword(request.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateLogin only checks presence; the format rules are not applied so
// that login never reveals which usernames would be valid.
func (v *UserValidator) validateLogin(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdate checks the supplied (non-nil) fields of a profile update.
//
// Default validated fields: Email, Username, FullName, PasswordPair.
// FieldNewPassword is not in the default set: the new password is checked
// after the current one has been verified.
func (v *UserValidator) validateUpdate(_ context.Context, request models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldFullName, FieldPasswordPair}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			if request.Email != nil {
				err = validateEmail(*request.Email)
			}
		case FieldUsername:
			if request.Username != nil {
				err = validateUsername(*request.Username)
			}
		case FieldFullName:
			if request.FullName != nil {
				err = validateFullName(*request.FullName)
			}
		case FieldPasswordPair:
			if request.HasCurrentPassword() != request.HasNewPassword() {
				err = ErrIncompletePasswordChange
			}
		case FieldNewPassword:
			if request.HasNewPassword() {
				err = v.validatePassword(*request.NewPassword)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}
	if !emailRegexp.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if !usernameRegexp.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

func validateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return ErrInvalidFullName
	}
	first, _ := utf8.DecodeRuneInString(fullName)
	last, _ := utf8.DecodeLastRuneInString(fullName)
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return ErrInvalidFullName
	}
	return nil
}

func (v *UserValidator) validatePassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < v.minPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordTooShort, v.minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
