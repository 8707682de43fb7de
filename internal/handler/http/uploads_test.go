package http

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestServeUpload(t *testing.T) {
	tests := []struct {
		name                string
		filename            string
		err                 error
		expectedStatus      int
		expectedContentType string
	}{
		{name: "png", filename: "0190-abc.png", expectedStatus: http.StatusOK, expectedContentType: "image/png"},
		{name: "unknown extension", filename: "0190-abc", expectedStatus: http.StatusOK, expectedContentType: "application/octet-stream"},
		{name: "missing", filename: "nope.png", err: service.ErrNotFound, expectedStatus: http.StatusNotFound, expectedContentType: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			var body io.ReadCloser
			if tt.err == nil {
				body = io.NopCloser(strings.NewReader("image-bytes"))
			}
			m.uploads.EXPECT().Open(gomock.Any(), tt.filename).Return(body, tt.err)

			rec := do(t, router, http.MethodGet, "/uploads/"+tt.filename, nil, nil)

			require.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedContentType, rec.Header().Get("Content-Type"))
			if tt.err == nil {
				assert.Equal(t, "image-bytes", rec.Body.String())
				assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
			}
		})
	}
}

func TestServeUpload_NoAuthRequired(t *testing.T) {
	router, m := newTestRouter(t)
	m.uploads.EXPECT().Open(gomock.Any(), "x.gif").Return(io.NopCloser(strings.NewReader("GIF89a")), nil)

	rec := do(t, router, http.MethodGet, "/uploads/x.gif", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
