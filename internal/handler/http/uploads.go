package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/go-chi/chi/v5"
)

// serveUpload streams a stored image. Stored names are unique and never
// reused, so responses may be cached indefinitely.
func (h *Handler) serveUpload(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	body, err := h.services.UploadService.Open(r.Context(), filename)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		logger.FromRequest(r).Err(err).Str("filename", filename).Msg("error streaming upload")
	}
}
