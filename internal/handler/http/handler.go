// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/service"
)

type Handler struct {
	services *service.Services
	session  *SessionCarrier

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		session:  NewSessionCarrier(cfg.Session, cfg.Auth.TokenDuration),
		logger:   logger,
	}
}
