// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service so that load
// balancers and orchestrators can probe the account gateway.
package grpc

import (
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountServiceName is the service name reported by the health server in
// addition to the overall ("") status.
const AccountServiceName = "bliss.AccountService"

// Handler is the root gRPC transport handler.
//
// It holds the health server whose status follows the process lifecycle:
// SERVING from construction, NOT_SERVING once shutdown starts.
type Handler struct {
	// services is kept for parity with the HTTP handler; the health
	// service does not call into it.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING for the whole server
// and for [AccountServiceName].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(AccountServiceName, healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetNotServing flips every status to NOT_SERVING. Watchers are notified.
func (h *Handler) SetNotServing() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}
