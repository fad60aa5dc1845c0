// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/service"
	"github.com/MKhiriev/bliss/internal/store"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/internal/validators"
	"github.com/MKhiriev/bliss/models"
)

const internalErrorMessage = "internal server error"

// errorMapping turns a matching error into a status and client message.
// An empty message means the error text itself is shown.
type errorMapping struct {
	match   func(error) bool
	status  int
	message string
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

// errorStatusTable is checked top to bottom; the first match wins. Anything
// unmatched is a 500 with a generic message.
var errorStatusTable = []errorMapping{
	{match: is(service.ErrUnauthenticated), status: http.StatusUnauthorized, message: "unauthorized"},
	{match: is(service.ErrInvalidCredentials), status: http.StatusUnauthorized, message: "invalid credentials"},
	{match: is(service.ErrWrongCurrentPassword), status: http.StatusBadRequest, message: "current password is incorrect"},

	{match: is(store.ErrUsernameAlreadyExists), status: http.StatusConflict, message: "username is already taken"},
	{match: is(store.ErrEmailAlreadyExists), status: http.StatusConflict, message: "email is already taken"},
	{match: is(store.ErrUserNotFound), status: http.StatusNotFound, message: "user not found"},

	{match: is(ErrInvalidJSON), status: http.StatusBadRequest, message: ErrInvalidJSON.Error()},
	{match: is(service.ErrInvalidDataProvided), status: http.StatusBadRequest, message: "invalid data provided"},
	{match: validators.IsValidationError, status: http.StatusBadRequest},
}

func statusFromError(err error) (int, string) {
	for _, m := range errorStatusTable {
		if m.match(err) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

// writeError logs err with the request logger and writes the mapped JSON
// error body. Details of 5xx errors are only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().AnErr("reason", err).Int("status", status).Msg("request rejected")
	}

	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
