// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

func newTestTokenSvc(t *testing.T, now *time.Time) *tokenService {
	t.Helper()
	svc := NewTokenService(config.Auth{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "bliss",
		TokenDuration: 15 * 24 * time.Hour,
	}, logger.Nop()).(*tokenService)
	svc.now = func() time.Time { return *now }
	return svc
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenSvc(t, &now)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, now, token.IssuedAt)
	assert.Equal(t, now.Add(360*time.Hour), token.ExpiresAt)

	parsed, err := svc.VerifyToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestTokenService_ExpiryIsEnforced(t *testing.T) {
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenSvc(t, &now)
	ctx := context.Background()

	token, err := svc.IssueToken(ctx, "user-1")
	require.NoError(t, err)

	now = now.Add(360*time.Hour + time.Second)

	_, err = svc.VerifyToken(ctx, token.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, utils.ErrTokenExpired)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	now := time.Now()
	svc := newTestTokenSvc(t, &now)
	ctx := context.Background()

	other := newTestTokenSvc(t, &now)
	other.tokenSignKey = "ffffffffffffffffffffffffffffffff"
	forged, err := other.IssueToken(ctx, "user-1")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, forged.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, err, utils.ErrTokenSignatureInvalid)

	_, err = svc.VerifyToken(ctx, "not.a.token")
	assert.ErrorIs(t, err, utils.ErrTokenMalformed)
}

func TestTokenService_IssueToken_EmptyUserID(t *testing.T) {
	now := time.Now()
	svc := newTestTokenSvc(t, &now)

	_, err := svc.IssueToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
