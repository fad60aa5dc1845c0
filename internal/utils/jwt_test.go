// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/bliss/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "bliss-test"
	testSignKey = "0123456789abcdef0123456789abcdef"
	otherKey    = "fedcba9876543210fedcba9876543210"
)

func fixedClock(t time.Time) jwt.ParserOption {
	return jwt.WithTimeFunc(func() time.Time { return t })
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims, key any) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	issuedAt := time.Now().Truncate(time.Second)

	token, err := GenerateJWTToken(testIssuer, "user-1", issuedAt, time.Hour, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "user-1", token.UserID)
	assert.Equal(t, issuedAt.Add(time.Hour), token.ExpiresAt)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.True(t, parsed.ExpiresAt.Equal(token.ExpiresAt))
	assert.True(t, parsed.IssuedAt.Equal(issuedAt))
}

func TestGenerateJWTToken_PayloadUsesUserIDClaim(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, "user-1", time.Now(), time.Hour, testSignKey)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["userId"])
	assert.Equal(t, testIssuer, claims["iss"])
	assert.Contains(t, claims, "exp")
	assert.Contains(t, claims, "iat")
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		userID   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "u", time.Hour, testSignKey},
		{"empty user", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, "u", 0, testSignKey},
		{"negative duration", testIssuer, "u", -time.Hour, testSignKey},
		{"empty key", testIssuer, "u", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.userID, time.Now(), tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, err := GenerateJWTToken(testIssuer, "user-1", issuedAt, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(issuedAt.Add(59*time.Minute)))
	assert.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(issuedAt.Add(2*time.Hour)))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	now := time.Now()
	valid, err := GenerateJWTToken(testIssuer, "user-1", now, time.Hour, testSignKey)
	require.NoError(t, err)
	other, err := GenerateJWTToken(testIssuer, "user-2", now, time.Hour, testSignKey)
	require.NoError(t, err)

	validParts := strings.Split(valid.SignedString, ".")
	otherParts := strings.Split(other.SignedString, ".")
	swappedPayload := validParts[0] + "." + otherParts[1] + "." + validParts[2]

	expiredForeign, err := GenerateJWTToken(testIssuer, "user-1", now.Add(-2*time.Hour), time.Hour, otherKey)
	require.NoError(t, err)

	registered := func(exp bool) jwt.RegisteredClaims {
		rc := jwt.RegisteredClaims{Issuer: testIssuer, IssuedAt: jwt.NewNumericDate(now)}
		if exp {
			rc.ExpiresAt = jwt.NewNumericDate(now.Add(time.Hour))
		}
		return rc
	}

	tests := []struct {
		name    string
		token   string
		issuer  string
		wantErr error
	}{
		{name: "empty", token: "", issuer: testIssuer, wantErr: ErrTokenMalformed},
		{name: "garbage", token: "not-a-token", issuer: testIssuer, wantErr: ErrTokenMalformed},
		{name: "bad segments", token: "a.b.c", issuer: testIssuer, wantErr: ErrTokenMalformed},
		{
			name:    "signed with another key",
			token:   signClaims(t, jwt.SigningMethodHS256, &models.Claims{UserID: "user-1", RegisteredClaims: registered(true)}, []byte(otherKey)),
			issuer:  testIssuer,
			wantErr: ErrTokenSignatureInvalid,
		},
		{name: "payload swapped", token: swappedPayload, issuer: testIssuer, wantErr: ErrTokenSignatureInvalid},
		{name: "expired and foreign signature", token: expiredForeign.SignedString, issuer: testIssuer, wantErr: ErrTokenSignatureInvalid},
		{
			name:    "alg none",
			token:   signClaims(t, jwt.SigningMethodNone, &models.Claims{UserID: "user-1", RegisteredClaims: registered(true)}, jwt.UnsafeAllowNoneSignatureType),
			issuer:  testIssuer,
			wantErr: ErrTokenSignatureInvalid,
		},
		{
			name:    "HS512 with same key",
			token:   signClaims(t, jwt.SigningMethodHS512, &models.Claims{UserID: "user-1", RegisteredClaims: registered(true)}, []byte(testSignKey)),
			issuer:  testIssuer,
			wantErr: ErrTokenSignatureInvalid,
		},
		{name: "wrong issuer", token: valid.SignedString, issuer: "someone-else", wantErr: ErrTokenInvalid},
		{
			name:    "missing exp",
			token:   signClaims(t, jwt.SigningMethodHS256, &models.Claims{UserID: "user-1", RegisteredClaims: registered(false)}, []byte(testSignKey)),
			issuer:  testIssuer,
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "missing userId",
			token:   signClaims(t, jwt.SigningMethodHS256, &models.Claims{RegisteredClaims: registered(true)}, []byte(testSignKey)),
			issuer:  testIssuer,
			wantErr: ErrTokenInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := ValidateAndParseJWTToken(tt.token, testSignKey, tt.issuer)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, token.UserID)
		})
	}
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// flipSignatureBit flips one bit of the 6-bit value encoded by the
// signature character at position pos.
func flipSignatureBit(t *testing.T, signed string, pos, bit int) string {
	t.Helper()

	dot := strings.LastIndex(signed, ".")
	signature := []byte(signed[dot+1:])
	idx := strings.IndexByte(base64URLAlphabet, signature[pos])
	require.GreaterOrEqual(t, idx, 0)

	signature[pos] = base64URLAlphabet[idx^(1<<bit)]
	return signed[:dot+1] + string(signature)
}

func TestValidateAndParseJWTToken_SignatureBitFlips(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, "user-1", time.Now(), time.Hour, testSignKey)
	require.NoError(t, err)

	signatureLen := len(valid.SignedString) - strings.LastIndex(valid.SignedString, ".") - 1
	positions := map[string]int{
		"last":   signatureLen - 1,
		"middle": signatureLen / 2,
	}

	for name, pos := range positions {
		for bit := 0; bit < 6; bit++ {
			t.Run(fmt.Sprintf("%s char bit %d", name, bit), func(t *testing.T) {
				tampered := flipSignatureBit(t, valid.SignedString, pos, bit)
				require.NotEqual(t, valid.SignedString, tampered)

				token, err := ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
				assert.Empty(t, token.UserID)
			})
		}
	}
}
