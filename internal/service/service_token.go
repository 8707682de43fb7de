// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HMAC-SHA256 JWT implementation of TokenService.
//
// The signing secret and issuer are copied from config at construction and
// never change afterwards, so a tokenService is safe for concurrent use.
type tokenService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim embedded in every token. Tokens carrying a
	// different issuer are rejected by Verify.
	issuer string

	// now is the clock used for "iat" and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the token settings in cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, userID string, role models.Role, ttl time.Duration) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, userID, role, s.now(), ttl, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates token and returns the identity it carries.
//
// An expired but otherwise authentic token yields ErrExpiredToken; every
// other failure (bad signature, wrong issuer, malformed, unknown role)
// yields ErrInvalidToken.
func (s *tokenService) Verify(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrInvalidToken
	}

	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Identity{}, ErrExpiredToken
		}
		return models.Identity{}, ErrInvalidToken
	}

	return parsed.Identity(), nil
}
