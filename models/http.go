// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of the profile update endpoint.
// A nil field is left unchanged. An empty CurrentPassword or NewPassword is
// treated the same as an absent one.
type UpdateProfileRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Link     *string `json:"link,omitempty"`

	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// HasCurrentPassword reports whether a non-empty current password was sent.
func (r UpdateProfileRequest) HasCurrentPassword() bool {
	return r.CurrentPassword != nil && *r.CurrentPassword != ""
}

// HasNewPassword reports whether a non-empty new password was sent.
func (r UpdateProfileRequest) HasNewPassword() bool {
	return r.NewPassword != nil && *r.NewPassword != ""
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of responses that only carry a message.
type MessageResponse struct {
	Message string `json:"message"`
}
