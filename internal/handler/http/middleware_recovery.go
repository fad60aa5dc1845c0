// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
)

// withRecovery turns a panic in a downstream handler into the generic 500
// JSON response. http.ErrAbortHandler is re-raised.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rvr).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")

			_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: internalErrorMessage}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
