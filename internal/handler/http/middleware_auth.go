// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/rs/zerolog"
)

// identify is an HTTP middleware that resolves the caller's identity from the
// configured token header.
//
// The token is verified with [service.TokenService.Verify]; no database
// lookup is made. On success the [models.Identity] is stored in the request
// context (see [utils.WithIdentity]) and the request logger gains a
// "user_id" field. A missing, malformed, invalid or expired token is answered
// with 401 and the downstream handler never runs.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := h.tokenFromRequest(r)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err))
			return
		}

		ctx := r.Context()
		identity, err := h.services.TokenService.Verify(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthenticated) {
				err = fmt.Errorf("%w: %w", service.ErrInvalidToken, err)
			}
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", identity.UserID)
		})
		ctx = l.WithContext(utils.WithIdentity(ctx, identity))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole returns a middleware that lets the request through only when
// the identity resolved by identify has exactly the given role. Admin does not
// satisfy user-only routes.
//
// Running it without a resolved identity is a wiring error and yields 500.
func requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				writeError(w, r, fmt.Errorf("%w: role guard without identity", service.ErrPreconditionFailed))
				return
			}

			if identity.Role != role {
				writeError(w, r, fmt.Errorf("%w: role %q required, got %q", service.ErrForbidden, role, identity.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// tokenFromRequest reads the raw token from the configured header. For the
// "Authorization" header the value must use the Bearer scheme; any other
// header carries the bare token.
func (h *Handler) tokenFromRequest(r *http.Request) (string, error) {
	value := strings.TrimSpace(r.Header.Get(h.tokenHeader))
	if value == "" {
		return "", ErrEmptyTokenHeader
	}

	if !strings.EqualFold(h.tokenHeader, "Authorization") {
		return value, nil
	}

	token, err := utils.ParseBearerToken(value)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}
