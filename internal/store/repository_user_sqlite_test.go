// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/bliss/internal/config"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteUserRepo(t *testing.T) UserRepository {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnectDB(ctx, config.DB{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	assert.Equal(t, config.DriverSQLite, db.Driver())

	return NewStorages(db, logger.Nop()).UserRepository
}

func TestSQLiteUserRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteUserRepo(t)

	created, err := repo.CreateUser(ctx, models.User{
		ID: "u-1", Username: "alice", Email: "alice@example.com", FullName: "Alice", PasswordHash: "hash-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Empty(t, created.PasswordHash)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := repo.FindUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Empty(t, byID.PasswordHash)

	byName, err := repo.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash-1", byName.PasswordHash)

	bio, hash := "hello", "hash-2"
	updated, err := repo.UpdateUser(ctx, models.UserUpdate{ID: "u-1", Bio: &bio, PasswordHash: &hash})
	require.NoError(t, err)
	assert.Equal(t, "hello", updated.Bio)
	assert.Equal(t, "Alice", updated.FullName)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	stored, err := repo.FindCredentialsByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "hash-2", stored)
}

func TestSQLiteUserRepository_Conflicts(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteUserRepo(t)

	_, err := repo.CreateUser(ctx, models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", FullName: "Alice", PasswordHash: "h"})
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, models.User{ID: "u-2", Username: "bob", Email: "bob@example.com", FullName: "Bob", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{ID: "u-3", Username: "alice", Email: "other@example.com", FullName: "A", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	_, err = repo.CreateUser(ctx, models.User{ID: "u-3", Username: "carol", Email: "alice@example.com", FullName: "C", PasswordHash: "h"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	taken := "alice"
	_, err = repo.UpdateUser(ctx, models.UserUpdate{ID: "u-2", Username: &taken})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	// keeping one's own username is not a conflict
	own := "bob"
	_, err = repo.UpdateUser(ctx, models.UserUpdate{ID: "u-2", Username: &own})
	assert.NoError(t, err)
}

func TestSQLiteUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteUserRepo(t)

	_, err := repo.FindUserByID(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	name := "Ghost"
	_, err = repo.UpdateUser(ctx, models.UserUpdate{ID: "ghost", FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
