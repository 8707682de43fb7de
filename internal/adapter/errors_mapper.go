package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

// mapHTTPError returns nil for 2xx responses and a *ResponseError otherwise.
// The message and field errors are taken from the JSON error body when the
// server sent one, or from the raw body.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		kind:       statusErrors[resp.StatusCode()],
	}

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Message != "" {
		respErr.Message = body.Message
		respErr.Fields = body.Errors
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
	}

	if respErr.Message == "" {
		respErr.Message = http.StatusText(resp.StatusCode())
	}

	return respErr
}
