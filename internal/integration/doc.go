// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package integration holds end-to-end tests that run the HTTP API over a
// migrated in-memory SQLite store and drive it with the account client.
package integration
