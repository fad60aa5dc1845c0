// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/models"
	"github.com/stretchr/testify/assert"
)

func TestGetAppInfo_ReturnsBuildInfo(t *testing.T) {
	info := models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "1.2.3", got.BuildVersion())
	assert.Equal(t, "abc123", got.BuildCommit())
}

func TestGetAppInfo_EmptyValuesReportedAsNA(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetAppInfo(context.Background())

	assert.Equal(t, "N/A", got.BuildVersion())
	assert.Equal(t, "N/A", got.BuildDate())
}
