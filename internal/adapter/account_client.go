// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/models"
	"github.com/go-resty/resty/v2"
)

const (
	signupPath  = "/api/auth/signup"
	loginPath   = "/api/auth/login"
	logoutPath  = "/api/auth/logout"
	mePath      = "/api/auth/me"
	profilePath = "/api/users/me"
)

type httpAccountClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewAccountClient constructs an HTTP implementation of [AccountClient]
// bound to address. A bare host:port is treated as an http:// URL.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewAccountClient(address string, requestTimeout time.Duration, logger *logger.Logger) (AccountClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid account client address: %w", err)
	}

	return &httpAccountClient{
		client: utils.NewHTTPClient(baseURL, requestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpAccountClient) request(ctx context.Context) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetError(&models.ErrorResponse{})
}

func (c *httpAccountClient) Signup(ctx context.Context, request models.SignupRequest) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&profile).
		Post(signupPath)
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, err
	}

	c.logger.Debug().Str("user_id", profile.ID).Msg("signed up")
	return profile, nil
}

func (c *httpAccountClient) Login(ctx context.Context, request models.LoginRequest) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&profile).
		Post(loginPath)
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, err
	}

	c.logger.Debug().Str("user_id", profile.ID).Msg("logged in")
	return profile, nil
}

func (c *httpAccountClient) Logout(ctx context.Context) error {
	resp, err := c.request(ctx).Post(logoutPath)
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpAccountClient) Me(ctx context.Context) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := c.request(ctx).
		SetResult(&profile).
		Get(mePath)
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, err
	}

	return profile, nil
}

func (c *httpAccountClient) UpdateProfile(ctx context.Context, request models.UpdateProfileRequest) (models.PublicProfile, error) {
	var profile models.PublicProfile

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&profile).
		Patch(profilePath)
	if err != nil {
		return models.PublicProfile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PublicProfile{}, err
	}

	return profile, nil
}
