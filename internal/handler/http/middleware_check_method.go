// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
)

// notFound replaces chi's plain-text 404 so that every error body is JSON.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "not found"}, http.StatusNotFound)
}

// methodNotAllowed replaces chi's plain-text 405. chi has already set the
// Allow header.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "method not allowed"}, http.StatusMethodNotAllowed)
}
