// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/crypto"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

// accountService is the concrete implementation of AccountService.
//
// Email uniqueness is never checked before an insert or update; the unique
// index of the users table rejects the second writer and the conflict is
// reported as ErrAlreadyExists.
type accountService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher        crypto.PasswordHasher
	tokenService  TokenService
	uploadService UploadService
	validator     validators.Validator
	ids           utils.IDGenerator

	// tokenDuration is the ttl of tokens issued by signup and signin.
	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. Tokens are issued with the
// duration configured in cfg.
func NewAccountService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenService TokenService,
	uploadService UploadService,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		uploadService:  uploadService,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Signup creates an account with the given role and returns a token for it.
//
// The token is issued before the insert, so a failed signup never leaves an
// account behind. Returns:
//   - ErrValidationFailed (as *validators.ValidationError) for malformed input.
//   - ErrAlreadyExists if the email is taken.
func (a *accountService) Signup(ctx context.Context, role models.Role, req models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	if !role.Valid() {
		return models.AuthResult{}, fmt.Errorf("%w: unknown role %q", ErrPreconditionFailed, role)
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	now := a.now().UTC()
	user := models.User{
		UserID:       a.ids.Generate(),
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	token, err := a.tokenService.Issue(ctx, user.UserID, user.Role, a.tokenDuration)
	if err != nil {
		return models.AuthResult{}, err
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			log.Err(err).Str("role", role.String()).Msg("user creation ended with error")
		}
		return models.AuthResult{}, fromStoreError(err, "user creation ended with error")
	}

	result := models.AuthResult{Token: token.SignedString, User: created.Public()}
	if role == models.RoleAdmin {
		result.Message = app.MsgAdminCreated
	}

	return result, nil
}

// Signin authenticates an account of the given role.
//
// An unknown email, an account of another role and a wrong password all
// yield the same ErrInvalidCredentials.
func (a *accountService) Signin(ctx context.Context, role models.Role, req models.SigninRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if user.Role != role {
		log.Debug().Str("user_id", user.UserID).Str("requested_role", role.String()).Msg("role mismatch on signin")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("password verification failed")
		return models.AuthResult{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		return models.AuthResult{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, user.UserID, user.Role, a.tokenDuration)
	if err != nil {
		return models.AuthResult{}, err
	}

	return models.AuthResult{Token: token.SignedString, User: user.Public()}, nil
}

// Signout keeps no server-side state: the client discards its token.
func (a *accountService) Signout(ctx context.Context) models.MessageResponse {
	return models.MessageResponse{Message: app.MsgSignedOut}
}

func (a *accountService) Profile(ctx context.Context, identity models.Identity) (models.PublicUser, error) {
	user, err := a.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		return models.PublicUser{}, fromStoreError(err, "user search by id failed")
	}

	return user.Public(), nil
}

// UpdateProfile applies a partial update. An empty update is rejected with
// ErrValidationFailed; an email that belongs to another account yields
// ErrAlreadyExists.
func (a *accountService) UpdateProfile(ctx context.Context, identity models.Identity, update models.UserUpdate, picture *models.Upload) (models.PublicUser, error) {
	if update.IsEmpty() && picture == nil {
		return models.PublicUser{}, validators.NewValidationError("payload", "at least one field must be provided")
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}
	if err := a.validator.Validate(ctx, update); err != nil {
		return models.PublicUser{}, err
	}

	if picture != nil {
		filename, err := a.uploadService.SaveImage(ctx, *picture)
		if err != nil {
			return models.PublicUser{}, err
		}
		update.ProfilePicture = &filename
	}

	update.UserID = identity.UserID
	updated, err := a.userRepository.UpdateUser(ctx, update, a.now().UTC())
	if err != nil {
		if update.ProfilePicture != nil {
			a.uploadService.Discard(ctx, *update.ProfilePicture)
		}
		return models.PublicUser{}, fromStoreError(err, "user update failed")
	}

	return updated.Public(), nil
}

func (a *accountService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fromStoreError(err, "error listing users")
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}

	return public, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
