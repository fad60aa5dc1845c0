// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.SignupRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AccountService.Signup(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AccountService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusOK)
}

// startSession issues a token for user, attaches it as the session cookie
// and writes the public profile with status.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.TokenService.IssueToken(r.Context(), user.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.session.Attach(w, token)

	logger.FromRequest(r).Info().Object("user", user).Msg("session started")
	_, _ = utils.WriteJSON(w, user.PublicProfile(), status)
}

// logout always succeeds, whether or not the request was authenticated.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.session.Clear(w)
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	_, _ = utils.WriteJSON(w, user.PublicProfile(), http.StatusOK)
}
