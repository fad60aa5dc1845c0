// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bliss/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func strPtr(s string) *string { return &s }

func Test_buildCreateUserQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		ID: "u-1", Username: "alice", Email: "alice@example.com", FullName: "Alice",
		PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
	}

	query, args, err := buildCreateUserQuery(dollar, user)
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (id,username,email,full_name,password_hash,bio,link,created_at,updated_at) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) "+
			"RETURNING id, username, email, full_name, bio, link, created_at, updated_at",
		query)
	assert.Equal(t, []any{"u-1", "alice", "alice@example.com", "Alice", "hash", "", "", now, now}, args)
}

func Test_buildFindUserQuery(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		columns   []string
		where     sq.Eq
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "public projection by id",
			builder:   dollar,
			columns:   publicUserColumns,
			where:     sq.Eq{columnID: "u-1"},
			wantQuery: "SELECT id, username, email, full_name, bio, link, created_at, updated_at FROM users WHERE id = $1 LIMIT 1",
			wantArgs:  []any{"u-1"},
		},
		{
			name:      "full record by username",
			builder:   dollar,
			columns:   fullUserColumns,
			where:     sq.Eq{columnUsername: "alice"},
			wantQuery: "SELECT id, username, email, full_name, bio, link, created_at, updated_at, password_hash FROM users WHERE username = $1 LIMIT 1",
			wantArgs:  []any{"alice"},
		},
		{
			name:      "sqlite placeholders",
			builder:   question,
			columns:   []string{columnPasswordHash},
			where:     sq.Eq{columnID: "u-1"},
			wantQuery: "SELECT password_hash FROM users WHERE id = ? LIMIT 1",
			wantArgs:  []any{"u-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserQuery(tt.builder, tt.columns, tt.where)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	const suffix = " RETURNING id, username, email, full_name, bio, link, created_at, updated_at"

	tests := []struct {
		name      string
		update    models.UserUpdate
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "single field",
			update:    models.UserUpdate{ID: "u-1", FullName: strPtr("Bob")},
			wantQuery: "UPDATE users SET full_name = $1, updated_at = $2 WHERE id = $3" + suffix,
			wantArgs:  []any{"Bob", now, "u-1"},
		},
		{
			name: "all fields",
			update: models.UserUpdate{
				ID: "u-1", FullName: strPtr("Bob"), Username: strPtr("bob"), Email: strPtr("bob@example.com"),
				Bio: strPtr(""), Link: strPtr("https://bob.dev"), PasswordHash: strPtr("h"),
			},
			wantQuery: "UPDATE users SET full_name = $1, username = $2, email = $3, bio = $4, link = $5, " +
				"password_hash = $6, updated_at = $7 WHERE id = $8" + suffix,
			wantArgs: []any{"Bob", "bob", "bob@example.com", "", "https://bob.dev", "h", now, "u-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(dollar, tt.update, now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestTimestamp_Scan(t *testing.T) {
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name    string
		src     any
		want    time.Time
		wantErr bool
	}{
		{name: "time value", src: want, want: want},
		{name: "nil", src: nil, want: time.Time{}},
		{name: "sqlite text", src: "2026-01-02 03:04:05+00:00", want: want},
		{name: "bytes", src: []byte("2026-01-02T03:04:05Z"), want: want},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got time.Time
			err := timestamp{&got}.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}
