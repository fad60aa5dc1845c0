// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML files. Durations
// are written as strings such as "360h".
type fileConfig struct {
	App struct {
		Environment string `json:"environment" toml:"environment"`
		LogLevel    string `json:"log_level" toml:"log_level"`
	} `json:"app" toml:"app"`

	Auth struct {
		TokenSignKey          string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer           string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration         Duration `json:"token_duration" toml:"token_duration"`
		PasswordHashAlgorithm string   `json:"password_hash_algorithm" toml:"password_hash_algorithm"`
		PasswordHashCost      int      `json:"password_hash_cost" toml:"password_hash_cost"`
		MinPasswordLength     int      `json:"min_password_length" toml:"min_password_length"`
	} `json:"auth" toml:"auth"`

	Session struct {
		CookieName   string `json:"cookie_name" toml:"cookie_name"`
		CookieDomain string `json:"cookie_domain" toml:"cookie_domain"`
		SameSite     string `json:"same_site" toml:"same_site"`
	} `json:"session" toml:"session"`

	Storage struct {
		DB struct {
			Driver         string `json:"driver" toml:"driver"`
			DSN            string `json:"dsn" toml:"dsn"`
			MaxOpenConns   int    `json:"max_open_conns" toml:"max_open_conns"`
			ConnectRetries uint64 `json:"connect_retries" toml:"connect_retries"`
			QueryRetries   uint64 `json:"query_retries" toml:"query_retries"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" toml:"http_address"`
		GRPCAddress     string   `json:"grpc_address" toml:"grpc_address"`
		ReadTimeout     Duration `json:"read_timeout" toml:"read_timeout"`
		WriteTimeout    Duration `json:"write_timeout" toml:"write_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" toml:"shutdown_timeout"`
	} `json:"server" toml:"server"`
}

// parseFile reads a config file. Files ending in ".toml" are decoded as
// TOML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err = toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	} else {
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: fc.App.Environment,
			LogLevel:    fc.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:          fc.Auth.TokenSignKey,
			TokenIssuer:           fc.Auth.TokenIssuer,
			TokenDuration:         time.Duration(fc.Auth.TokenDuration),
			PasswordHashAlgorithm: fc.Auth.PasswordHashAlgorithm,
			PasswordHashCost:      fc.Auth.PasswordHashCost,
			MinPasswordLength:     fc.Auth.MinPasswordLength,
		},
		Session: Session{
			CookieName:   fc.Session.CookieName,
			CookieDomain: fc.Session.CookieDomain,
			SameSite:     fc.Session.SameSite,
		},
		Storage: Storage{
			DB: DB{
				Driver:         fc.Storage.DB.Driver,
				DSN:            fc.Storage.DB.DSN,
				MaxOpenConns:   fc.Storage.DB.MaxOpenConns,
				ConnectRetries: fc.Storage.DB.ConnectRetries,
				QueryRetries:   fc.Storage.DB.QueryRetries,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			GRPCAddress:     fc.Server.GRPCAddress,
			ReadTimeout:     time.Duration(fc.Server.ReadTimeout),
			WriteTimeout:    time.Duration(fc.Server.WriteTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
