// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/crypto"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/store"
	"github.com/MKhiriev/bliss/internal/validators"
	"github.com/MKhiriev/bliss/models"
)

type Services struct {
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewCredentialHasher(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("error creating credential hasher: %w", err)
	}

	validator := validators.NewUserValidator(cfg.Auth.MinPasswordLength)
	accountService := NewAccountService(storages.UserRepository, hasher, validator, logger)

	return &Services{
		AccountService: NewAccountValidationService(validator).Wrap(accountService),
		TokenService:   NewTokenService(cfg.Auth, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}, nil
}
