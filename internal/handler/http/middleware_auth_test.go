// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// captureIdentity is a downstream handler that records whether it ran and
// which identity it saw.
type captureIdentity struct {
	called   bool
	identity models.Identity
	found    bool
}

func (c *captureIdentity) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.called = true
	c.identity, c.found = utils.GetIdentityFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestIdentify_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(m serviceMocks)
		wantStatus  int
		wantMessage string
		wantCalled  bool
	}{
		{
			name:        "missing header",
			header:      "",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please authenticate using a valid token",
		},
		{
			name:        "no bearer scheme",
			header:      "Token abc",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please authenticate using a valid token",
		},
		{
			name:        "bearer without token",
			header:      "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please authenticate using a valid token",
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(m serviceMocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "forged").Return(models.Identity{}, service.ErrInvalidToken)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please authenticate using a valid token",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(m serviceMocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "old").Return(models.Identity{}, service.ErrExpiredToken)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Token is expired",
		},
		{
			name:   "unexpected verify error is still 401",
			header: "Bearer weird",
			setup: func(m serviceMocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "weird").Return(models.Identity{}, errors.New("boom"))
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Please authenticate using a valid token",
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(m serviceMocks) {
				m.tokens.EXPECT().Verify(gomock.Any(), "good").Return(userIdentity, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t, testConfig())
			if tt.setup != nil {
				tt.setup(m)
			}

			next := &captureIdentity{}
			req := httptest.NewRequest(http.MethodPost, "/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.identify(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, next.called)
			if tt.wantCalled {
				require.True(t, next.found)
				assert.Equal(t, userIdentity, next.identity)
			} else {
				assert.Equal(t, tt.wantMessage, decodeError(t, rec).Message)
			}
		})
	}
}

func TestIdentify_CustomHeaderCarriesRawToken(t *testing.T) {
	cfg := testConfig()
	cfg.App.TokenHeader = "auth-token"
	h, m := newTestHandler(t, cfg)

	m.tokens.EXPECT().Verify(gomock.Any(), "raw-token").Return(adminIdentity, nil)

	next := &captureIdentity{}
	req := httptest.NewRequest(http.MethodPost, "/profile", nil)
	req.Header.Set("auth-token", " raw-token ")
	req.Header.Set("Authorization", "Bearer ignored")
	rec := httptest.NewRecorder()

	h.identify(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, adminIdentity, next.identity)
}

func TestRequireRole_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		required   models.Role
		identity   *models.Identity
		wantStatus int
		wantCalled bool
	}{
		{name: "user on user route", required: models.RoleUser, identity: &userIdentity, wantStatus: http.StatusOK, wantCalled: true},
		{name: "admin on admin route", required: models.RoleAdmin, identity: &adminIdentity, wantStatus: http.StatusOK, wantCalled: true},
		{name: "user on admin route", required: models.RoleAdmin, identity: &userIdentity, wantStatus: http.StatusForbidden},
		{name: "admin is not a user", required: models.RoleUser, identity: &adminIdentity, wantStatus: http.StatusForbidden},
		{name: "no identity", required: models.RoleUser, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &captureIdentity{}
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				req = req.WithContext(utils.WithIdentity(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()

			requireRole(tt.required)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, next.called)
		})
	}
}
