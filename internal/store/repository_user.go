// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/models"
)

// userRepository is the SQL implementation of [UserRepository] for both
// PostgreSQL and SQLite. It handles user account creation, lookup and
// partial updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser persists a new user record and returns the stored public
// projection. created_at and updated_at are set to the current time.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	user.CreatedAt, user.UpdatedAt = now, now

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	var created models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		created, scanErr = scanPublicUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.mapWriteError(err)
	}

	return created, nil
}

// FindUserByID retrieves the public projection of the user with the given id.
// Returns [ErrUserNotFound] if there is none.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder, publicUserColumns, sq.Eq{columnID: userID})
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByID", query, args, scanPublicUser)
}

// FindUserByUsername retrieves the full user record, password hash included.
// Returns [ErrUserNotFound] if there is none.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := buildFindUserQuery(r.db.builder, fullUserColumns, sq.Eq{columnUsername: username})
	if err != nil {
		return models.User{}, err
	}

	return r.findOne(ctx, "*userRepository.FindUserByUsername", query, args, scanFullUser)
}

// FindCredentialsByID returns the stored password hash of the user.
// Returns [ErrUserNotFound] if there is none.
func (r *userRepository) FindCredentialsByID(ctx context.Context, userID string) (string, error) {
	query, args, err := buildFindUserQuery(r.db.builder, []string{columnPasswordHash}, sq.Eq{columnID: userID})
	if err != nil {
		return "", err
	}

	user, err := r.findOne(ctx, "*userRepository.FindCredentialsByID", query, args, func(row rowScanner) (models.User, error) {
		var u models.User
		err := row.Scan(&u.PasswordHash)
		return u, err
	})
	if err != nil {
		return "", err
	}

	return user.PasswordHash, nil
}

// UpdateUser writes the non-nil fields of update in a single statement and
// returns the resulting public projection. An empty update writes nothing
// and returns the current record.
//
// Error handling matches [userRepository.CreateUser]; a missing row yields
// [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	if update.IsEmpty() {
		return r.FindUserByID(ctx, update.ID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, update, r.now())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, err
	}

	var updated models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		updated, scanErr = scanPublicUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, r.mapWriteError(err)
	}

	return updated, nil
}

func (r *userRepository) findOne(
	ctx context.Context,
	funcName, query string,
	args []any,
	scan func(rowScanner) (models.User, error),
) (models.User, error) {
	var found models.User
	err := r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		found, scanErr = scan(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// mapWriteError turns unique violations into the matching sentinel.
func (r *userRepository) mapWriteError(err error) error {
	if column, ok := r.db.errorClassificator.ConflictColumn(err); ok {
		switch column {
		case columnUsername:
			return ErrUsernameAlreadyExists
		case columnEmail:
			return ErrEmailAlreadyExists
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
