// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/bliss/models"
)

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// IssueToken signs a token bound to userID that expires after the
	// configured lifetime.
	IssueToken(ctx context.Context, userID string) (models.Token, error)

	// VerifyToken checks the signature, then the expiry and issuer, of a
	// token string. Every rejection wraps ErrUnauthenticated together with
	// the precise reason from the utils package.
	VerifyToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AccountService implements the account operations behind the HTTP API.
// Returned users never carry a password hash.
type AccountService interface {
	Signup(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	ResolveUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
