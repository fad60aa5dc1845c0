// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/bliss/models"
	"github.com/mattn/go-sqlite3"
)

// Columns of the users table.
const (
	columnID           = "id"
	columnUsername     = "username"
	columnEmail        = "email"
	columnFullName     = "full_name"
	columnPasswordHash = "password_hash"
	columnBio          = "bio"
	columnLink         = "link"
	columnCreatedAt    = "created_at"
	columnUpdatedAt    = "updated_at"
)

// publicUserColumns is the projection returned to callers that must not see
// the password hash. The scan order in scanPublicUser follows it.
var publicUserColumns = []string{
	columnID, columnUsername, columnEmail, columnFullName,
	columnBio, columnLink, columnCreatedAt, columnUpdatedAt,
}

// fullUserColumns extends publicUserColumns with the password hash.
var fullUserColumns = append(append([]string{}, publicUserColumns...), columnPasswordHash)

var usersTable = models.User{}.TableName()

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(builder sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := builder.
		Insert(usersTable).
		Columns(columnID, columnUsername, columnEmail, columnFullName, columnPasswordHash,
			columnBio, columnLink, columnCreatedAt, columnUpdatedAt).
		Values(user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
			user.Bio, user.Link, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(publicUserColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserQuery(builder sq.StatementBuilderType, columns []string, where sq.Eq) (string, []any, error) {
	query, args, err := builder.
		Select(columns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update plus
// updated_at. update must not be empty.
func buildUpdateUserQuery(builder sq.StatementBuilderType, update models.UserUpdate, now time.Time) (string, []any, error) {
	qb := builder.Update(usersTable)

	for _, field := range []struct {
		column string
		value  *string
	}{
		{columnFullName, update.FullName},
		{columnUsername, update.Username},
		{columnEmail, update.Email},
		{columnBio, update.Bio},
		{columnLink, update.Link},
		{columnPasswordHash, update.PasswordHash},
	} {
		if field.value != nil {
			qb = qb.Set(field.column, *field.value)
		}
	}

	query, args, err := qb.
		Set(columnUpdatedAt, now).
		Where(sq.Eq{columnID: update.ID}).
		Suffix(returning(publicUserColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPublicUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio, &u.Link,
		timestamp{&u.CreatedAt}, timestamp{&u.UpdatedAt})
	return u, err
}

func scanFullUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.Bio, &u.Link,
		timestamp{&u.CreatedAt}, timestamp{&u.UpdatedAt}, &u.PasswordHash)
	return u, err
}

// timestamp scans a time column. SQLite hands back text instead of
// time.Time when the column type is unknown, as in RETURNING results.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case nil:
		*ts.t = time.Time{}
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}
