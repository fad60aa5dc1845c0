// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account requests before they reach the account
// service. Every rule failure is a sentinel from errors.go whose text is safe
// to show to the client.
package validators

import "context"

// Validator checks a request value. With field names given, only those
// fields are checked; with none, the whole value is.
//
// An unsupported value type yields ErrUnsupportedType and an unknown field
// name yields ErrUnknownField.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
