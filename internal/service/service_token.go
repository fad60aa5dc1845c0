// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 implementation of TokenService. All fields are
// read-only after construction.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in and required of every token.
	tokenIssuer string

	// tokenDuration is the lifetime of a new token.
	tokenDuration time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the validated auth config.
func NewTokenService(cfg config.Auth, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

// IssueToken signs a token for userID with iat = now and exp = now + lifetime.
func (s *tokenService) IssueToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.tokenIssuer, userID, s.now(), s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.IssueToken").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// VerifyToken validates tokenString. On failure the error chain holds
// ErrUnauthenticated and one of utils.ErrTokenMalformed,
// utils.ErrTokenSignatureInvalid, utils.ErrTokenExpired or utils.ErrTokenInvalid.
func (s *tokenService) VerifyToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, jwt.WithTimeFunc(s.now))
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	return token, nil
}
