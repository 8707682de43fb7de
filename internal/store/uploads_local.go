package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
)

type localUploadStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalUploadStorage returns an [UploadStorage] keeping files in dir.
// The directory is created if missing.
func NewLocalUploadStorage(dir string, log *logger.Logger) (UploadStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating uploads dir: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("creating local upload storage")
	return &localUploadStorage{dir: dir, logger: log}, nil
}

// Save writes body to a temporary file first and renames it into place, so a
// failed or cancelled upload never leaves a partial file under its final name.
func (s *localUploadStorage) Save(ctx context.Context, originalName, contentType string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := utils.UniqueFilename(originalName)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("error writing upload: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing upload: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("error storing upload: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("filename", name).
		Str("content_type", contentType).
		Msg("upload stored on disk")

	return name, nil
}

func (s *localUploadStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validFilename(filename) {
		return nil, ErrInvalidFilename
	}

	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error opening upload: %w", err)
	}

	return f, nil
}

func (s *localUploadStorage) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !validFilename(filename) {
		return ErrInvalidFilename
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing upload: %w", err)
	}

	return nil
}

// validFilename accepts only plain names produced by Save.
func validFilename(name string) bool {
	return name != "" &&
		name == filepath.Base(name) &&
		!strings.HasPrefix(name, ".") &&
		!strings.ContainsAny(name, `/\`)
}
