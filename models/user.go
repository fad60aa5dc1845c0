// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/rs/zerolog"
)

// User is an account record as persisted by the user store.
// PasswordHash is derived by the credential hasher and must never leave the
// server: it is excluded from JSON and from structured logs.
type User struct {
	// ID is the opaque unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Username is unique and limited to letters, digits, '.', '_' and '-'.
	Username string `json:"username"`

	// Email is unique and must start with a letter.
	Email string `json:"email"`

	// FullName is the display name; not blank, no leading whitespace.
	FullName string `json:"fullName"`

	// PasswordHash is the encoded output of the credential hasher.
	// It is empty on records loaded through the public projection.
	PasswordHash string `json:"-"`

	// Bio is optional free text.
	Bio string `json:"bio,omitempty"`

	// Link is optional free text, typically a URL.
	Link string `json:"link,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicProfile returns the subset of the record that is safe to send to
// clients.
func (u User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Bio:      u.Bio,
		Link:     u.Link,
	}
}

// WithoutPasswordHash returns a copy of u with the hash cleared.
func (u User) WithoutPasswordHash() User {
	u.PasswordHash = ""
	return u
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler] so that a User
// passed to Object/EmbedObject only ever logs non-sensitive identity fields.
func (u User) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", u.ID).Str("username", u.Username)
}

// PublicProfile is the client-facing view of a [User].
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
	Link     string `json:"link,omitempty"`
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields are written (partial update support).
type UserUpdate struct {
	// ID of the record to update. Required.
	ID string

	FullName     *string
	Username     *string
	Email        *string
	Bio          *string
	Link         *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no field to write.
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil &&
		u.Username == nil &&
		u.Email == nil &&
		u.Bio == nil &&
		u.Link == nil &&
		u.PasswordHash == nil
}
