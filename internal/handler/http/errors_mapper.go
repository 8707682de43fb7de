package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lost-found/internal/app"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is matched top to bottom, so more specific errors come
// before the errors they wrap.
var errorStatusMap = []errorStatus{
	{target: service.ErrExpiredToken, status: http.StatusUnauthorized, message: app.MsgTokenIsExpired},
	{target: service.ErrUnauthenticated, status: http.StatusUnauthorized, message: app.MsgAuthenticate},
	{target: service.ErrForbidden, status: http.StatusForbidden, message: app.MsgAccessDenied},
	{target: service.ErrInvalidCredentials, status: http.StatusBadRequest, message: app.MsgInvalidCredentials},
	{target: service.ErrAlreadyExists, status: http.StatusConflict, message: app.MsgAlreadyExists},
	{target: service.ErrValidationFailed, status: http.StatusBadRequest, message: app.MsgValidationFailed},
	{target: ErrInvalidRequestBody, status: http.StatusBadRequest, message: app.MsgInvalidBody},
	{target: service.ErrNotFound, status: http.StatusNotFound, message: app.MsgNotFound},
	{target: service.ErrUnavailable, status: http.StatusServiceUnavailable, message: app.MsgServiceUnavailable},
	{target: service.ErrPreconditionFailed, status: http.StatusInternalServerError, message: app.MsgInternalServerError},
}

// statusFromError returns the HTTP status and the client-facing message for
// err. Unknown errors are internal failures and never expose their text.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and writes the matching ErrorResponse. Field details
// of a *validators.ValidationError are copied into the response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	resp := models.ErrorResponse{Message: message}
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		resp.Errors = vErr.Fields
	}

	if _, wErr := utils.WriteJSON(w, resp, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
