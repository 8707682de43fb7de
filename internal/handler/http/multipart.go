package http

import (
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

func isMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// parseMultipart parses the multipart body of r, capped at maxFiles uploads of
// the configured size plus one megabyte for the text fields.
func (h *Handler) parseMultipart(w http.ResponseWriter, r *http.Request, maxFiles int) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize*int64(maxFiles)+1<<20)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return validators.NewValidationError("body", fmt.Sprintf("must be at most %d bytes", maxErr.Limit))
		}
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
	return nil
}

// formValue returns the trimmed value of key, or nil when the key is absent
// or blank.
func formValue(form *multipart.Form, key string) *string {
	values := form.Value[key]
	if len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])
	if v == "" {
		return nil
	}
	return &v
}

func formString(form *multipart.Form, key string) string {
	if v := formValue(form, key); v != nil {
		return *v
	}
	return ""
}

// formFiles opens every file sent under field. The returned function closes
// them all and must be called once the uploads have been consumed.
func formFiles(form *multipart.Form, field string) ([]models.Upload, func(), error) {
	headers := form.File[field]
	uploads := make([]models.Upload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		opened = append(opened, f)

		uploads = append(uploads, models.Upload{
			Field:        field,
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Body:         f,
		})
	}

	return uploads, closeAll, nil
}
