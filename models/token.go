// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// On the wire it serializes to {"userId": ..., "iss": ..., "exp": ..., "iat": ...}.
type Claims struct {
	// UserID identifies the account the token was issued for.
	UserID string `json:"userId"`

	// RegisteredClaims carries iss, iat and exp as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token is a signed session token together with its decoded claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is a copy of the userId claim.
	UserID string `json:"-"`

	// IssuedAt and ExpiresAt are copies of the iat and exp claims.
	IssuedAt  time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
