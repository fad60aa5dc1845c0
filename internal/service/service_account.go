// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bliss/internal/crypto"
	"github.com/MKhiriev/bliss/internal/logger"
	"github.com/MKhiriev/bliss/internal/store"
	"github.com/MKhiriev/bliss/internal/utils"
	"github.com/MKhiriev/bliss/internal/validators"
	"github.com/MKhiriev/bliss/models"
)

type idGenerator interface {
	Generate() string
}

// accountService is the concrete implementation of AccountService.
// Request-shape validation is done by accountValidationService; this type
// only runs the checks that depend on stored state.
type accountService struct {
	userRepository store.UserRepository
	hasher         crypto.CredentialHasher

	// validator checks the new password once the current one is verified.
	validator validators.Validator
	ids       idGenerator

	logger *logger.Logger
}

// NewAccountService constructs an AccountService without request
// validation. Use NewAccountValidationService to wrap it.
func NewAccountService(
	userRepository store.UserRepository,
	hasher crypto.CredentialHasher,
	validator validators.Validator,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// Signup hashes the password and stores a new user under a fresh UUIDv7.
//
// Returns the created user or:
//   - ErrInvalidDataProvided if the hasher refuses the password.
//   - store.ErrUsernameAlreadyExists / store.ErrEmailAlreadyExists.
func (s *accountService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := s.hashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*accountService.Signup").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := s.userRepository.CreateUser(ctx, models.User{
		ID:           s.ids.Generate(),
		Username:     request.Username,
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Object("user", user).Msg("user signed up")
	return user.WithoutPasswordHash(), nil
}

// Login checks the username and password.
//
// An unknown username and a wrong password both return ErrInvalidCredentials.
// A stored hash that cannot be decoded is an internal error.
func (s *accountService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", request.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*accountService.Login").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := s.hasher.Verify(user.PasswordHash, request.Password)
	if err != nil {
		log.Err(err).Object("user", user).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Info().Object("user", user).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user.WithoutPasswordHash(), nil
}

// ResolveUser loads the public projection of the user a token was issued
// for. Returns store.ErrUserNotFound if the account no longer exists.
func (s *accountService) ResolveUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("error resolving user: %w", err)
	}

	return user.WithoutPasswordHash(), nil
}

// UpdateProfile applies the supplied fields of request to the user.
//
// When both passwords are supplied the current one is verified first
// (ErrWrongCurrentPassword on mismatch), then the new one is checked against
// the password policy and hashed. All checks run before the single write.
func (s *accountService) UpdateProfile(ctx context.Context, userID string, request models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		ID:       userID,
		FullName: request.FullName,
		Username: request.Username,
		Email:    request.Email,
		Bio:      request.Bio,
		Link:     request.Link,
	}

	if request.HasCurrentPassword() && request.HasNewPassword() {
		hash, err := s.changePassword(ctx, userID, request)
		if err != nil {
			log.Err(err).Str("user_id", userID).Msg("password change rejected")
			return models.User{}, err
		}
		update.PasswordHash = &hash
	}

	user, err := s.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return user.WithoutPasswordHash(), nil
}

// changePassword returns the hash of the new password after verifying the
// current one.
func (s *accountService) changePassword(ctx context.Context, userID string, request models.UpdateProfileRequest) (string, error) {
	stored, err := s.userRepository.FindCredentialsByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error loading credentials: %w", err)
	}

	ok, err := s.hasher.Verify(stored, *request.CurrentPassword)
	if err != nil {
		return "", fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return "", ErrWrongCurrentPassword
	}

	if err = s.validator.Validate(ctx, request, validators.FieldNewPassword); err != nil {
		return "", err
	}

	return s.hashPassword(*request.NewPassword)
}

func (s *accountService) hashPassword(password string) (string, error) {
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, crypto.ErrInvalidPassword) {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return hash, nil
}
