package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/store"
	"github.com/MKhiriev/go-lost-found/internal/validators"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/gabriel-vasile/mimetype"
)

// imageTypes are the content types accepted by SaveImage.
var imageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

type uploadService struct {
	storage store.UploadStorage

	// maxSize is the largest accepted file in bytes.
	maxSize int64

	logger *logger.Logger
}

func NewUploadService(storage store.UploadStorage, cfg config.Files, logger *logger.Logger) UploadService {
	maxSize := cfg.MaxUploadSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxUploadSize
	}

	return &uploadService{
		storage: storage,
		maxSize: maxSize,
		logger:  logger,
	}
}

// SaveImage reads at most maxSize+1 bytes of upload, detects the content type
// from the bytes themselves and stores the file under a name whose extension
// matches the detected type. The declared content type is ignored.
func (s *uploadService) SaveImage(ctx context.Context, upload models.Upload) (string, error) {
	field := upload.Field
	if field == "" {
		field = "file"
	}

	if upload.Body == nil {
		return "", validators.NewValidationError(field, "is required")
	}
	if upload.Size > s.maxSize {
		return "", validators.NewValidationError(field, fmt.Sprintf("must be at most %d bytes", s.maxSize))
	}

	data, err := io.ReadAll(io.LimitReader(upload.Body, s.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("error reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return "", validators.NewValidationError(field, fmt.Sprintf("must be at most %d bytes", s.maxSize))
	}
	if len(data) == 0 {
		return "", validators.NewValidationError(field, "must not be empty")
	}

	mime := mimetype.Detect(data)
	if !mimetype.EqualsAny(mime.String(), imageTypes...) {
		logger.FromContext(ctx).Debug().
			Str("field", field).
			Str("detected", mime.String()).
			Str("declared", upload.ContentType).
			Msg("upload rejected")
		return "", validators.NewValidationError(field, "must be a jpeg, png, gif or webp image")
	}

	base := filepath.Base(upload.OriginalName)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + mime.Extension()

	filename, err := s.storage.Save(ctx, name, mime.String(), bytes.NewReader(data))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("field", field).Msg("error saving upload")
		return "", fmt.Errorf("error saving upload: %w", err)
	}

	return filename, nil
}

func (s *uploadService) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	body, err := s.storage.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, store.ErrInvalidFilename) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fromStoreError(err, "error opening upload")
	}

	return body, nil
}

// Discard ignores cancellation of ctx.
func (s *uploadService) Discard(ctx context.Context, filenames ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range filenames {
		if err := s.storage.Delete(ctx, name); err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("filename", name).Msg("error discarding upload")
		}
	}
}
