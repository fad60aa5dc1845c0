// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the bliss server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or TOML config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The resulting config is
// read-only after startup; use [StructuredConfig.Redacted] before logging it.
package config
