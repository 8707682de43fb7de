package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"expired token", service.ErrExpiredToken, http.StatusUnauthorized, "Token is expired"},
		{"wrapped expired token", fmt.Errorf("verify: %w", service.ErrExpiredToken), http.StatusUnauthorized, "Token is expired"},
		{"invalid token", service.ErrInvalidToken, http.StatusUnauthorized, "Please authenticate using a valid token"},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "Please authenticate using a valid token"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Access denied"},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusBadRequest, "Please enter valid credentials"},
		{"already exists", service.ErrAlreadyExists, http.StatusConflict, "Already exists"},
		{"validation", validators.NewValidationError("email", "is required"), http.StatusBadRequest, "Validation failed"},
		{"bad body", ErrInvalidRequestBody, http.StatusBadRequest, "Invalid request body"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "Not found"},
		{"unavailable", fmt.Errorf("list users: %w", service.ErrUnavailable), http.StatusServiceUnavailable, app.MsgServiceUnavailable},
		{"precondition", service.ErrPreconditionFailed, http.StatusInternalServerError, app.MsgInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := statusFromError(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}

func TestWriteError_IncludesFieldErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/signup", nil)

	writeError(rec, req, validators.NewValidationError("password", "must be at least 6 characters"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Equal(t, map[string]string{"password": "must be at least 6 characters"}, resp.Errors)
}

func TestWriteError_OmitsFieldsForOtherErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/getUsers", nil)

	writeError(rec, req, service.ErrForbidden)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotContains(t, rec.Body.String(), "errors")
}
