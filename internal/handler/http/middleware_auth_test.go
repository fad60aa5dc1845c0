// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/service"
	"github.com/MKhiriev/bliss/internal/store"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runGateway sends a request through h.auth alone and reports whether the
// protected handler ran and which user it saw.
func runGateway(h *Handler, cookie *http.Cookie) (*httptest.ResponseRecorder, bool, models.User) {
	var (
		called bool
		seen   models.User
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr, called, seen
}

func TestAuth_Admitted(t *testing.T) {
	withHash := testUser
	withHash.PasswordHash = "$2a$10$hash"

	accounts := &mockAccountService{
		resolveUserFn: func(_ context.Context, userID string) (models.User, error) {
			return withHash, nil
		},
	}
	tokens := &mockTokenService{
		verifyFn: func(_ context.Context, s string) (models.Token, error) { return stubToken(s), nil },
	}
	h := newTestHTTPHandler(t, accounts, tokens)

	rr, called, seen := runGateway(h, &http.Cookie{Name: "jwt", Value: "good"})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, called)
	assert.Equal(t, testUser.ID, seen.ID)
	assert.Empty(t, seen.PasswordHash)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		cookie     *http.Cookie
		verifyErr  error
		resolveErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "no cookie",
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "empty cookie",
			cookie:     &http.Cookie{Name: "jwt", Value: ""},
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "malformed token",
			cookie:     &http.Cookie{Name: "jwt", Value: "x"},
			verifyErr:  fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenMalformed),
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "bad signature",
			cookie:     &http.Cookie{Name: "jwt", Value: "x"},
			verifyErr:  fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenSignatureInvalid),
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "expired token",
			cookie:     &http.Cookie{Name: "jwt", Value: "x"},
			verifyErr:  fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenExpired),
			wantStatus: http.StatusUnauthorized,
			wantError:  "unauthorized",
		},
		{
			name:       "deleted user",
			cookie:     &http.Cookie{Name: "jwt", Value: "x"},
			resolveErr: fmt.Errorf("error resolving user: %w", store.ErrUserNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "user not found",
		},
		{
			name:       "store failure",
			cookie:     &http.Cookie{Name: "jwt", Value: "x"},
			resolveErr: fmt.Errorf("%w: pool closed", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &mockAccountService{
				resolveUserFn: func(context.Context, string) (models.User, error) {
					return testUser, tt.resolveErr
				},
			}
			tokens := &mockTokenService{
				verifyFn: func(_ context.Context, s string) (models.Token, error) {
					if tt.verifyErr != nil {
						return models.Token{}, tt.verifyErr
					}
					return stubToken(s), nil
				},
			}
			h := newTestHTTPHandler(t, accounts, tokens)

			rr, called, _ := runGateway(h, tt.cookie)

			assert.False(t, called, "protected handler must not run")
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
		})
	}
}

func TestAuth_VerificationNotCalledWithoutCookie(t *testing.T) {
	// nil verifyFn fails the test if the gateway tries to verify
	h := newTestHTTPHandler(t, nil, nil)

	rr, called, _ := runGateway(h, nil)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_LogsPreciseReason(t *testing.T) {
	var buf bytes.Buffer
	tokens := &mockTokenService{
		verifyFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, fmt.Errorf("%w: %w", service.ErrUnauthenticated, utils.ErrTokenExpired)
		},
	}
	h := newTestHTTPHandler(t, nil, tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "jwt", Value: "x"})
	l := &logger.Logger{Logger: zerolog.New(&buf)}
	req = req.WithContext(l.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	h.auth(http.NotFoundHandler()).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, buf.String(), utils.ErrTokenExpired.Error())
	assert.NotContains(t, rr.Body.String(), "expired")
}
