// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/service"
	"github.com/MKhiriev/bliss/internal/utils"
)

// auth is the gateway in front of protected routes.
//
// It extracts the session token from the cookie, verifies it via
// [service.TokenService.VerifyToken], loads the user the token belongs to and
// stores it in the request context under [utils.UserCtxKey] before
// delegating to the next handler. The steps never reorder.
//
// Responses:
//   - no cookie, or any verification failure → 401 {"error":"unauthorized"}
//   - the user no longer exists → 404 {"error":"user not found"}
//   - any other failure → 500 {"error":"internal server error"}
//
// The log records the precise rejection reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenString, ok := h.session.Extract(r)
		if !ok {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrMissingSessionToken))
			return
		}

		token, err := h.services.TokenService.VerifyToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AccountService.ResolveUser(ctx, token.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		logger.FromRequest(r).Debug().Object("user", user).Msg("request authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, user)))
	})
}
