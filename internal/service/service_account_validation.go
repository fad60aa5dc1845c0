// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/validators"
	"github.com/MKhiriev/bliss/models"
)

// AccountValidationService rejects malformed requests before they reach the
// wrapped AccountService. Validation errors are returned unwrapped so their
// message can be shown to the client.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService(validator validators.Validator) AccountServiceWrapper {
	return &AccountValidationService{
		validator: validator,
	}
}

func (v *AccountValidationService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("signup request rejected")
		return models.User{}, err
	}

	return v.inner.Signup(ctx, request)
}

func (v *AccountValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("login request rejected")
		return models.User{}, err
	}

	return v.inner.Login(ctx, request)
}

func (v *AccountValidationService) ResolveUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.ResolveUser(ctx, userID)
}

// UpdateProfile checks the profile fields and that the passwords come as a
// pair. The new password itself is checked by the inner service after the
// current one is verified.
func (v *AccountValidationService) UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("profile update request rejected")
		return models.User{}, err
	}

	return v.inner.UpdateProfile(ctx, userID, request)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
