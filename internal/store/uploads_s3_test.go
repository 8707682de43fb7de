package store

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is a minimal path-style object store: PUT /bucket/key stores the
// body, GET /bucket/key returns it, DELETE /bucket/key removes it.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := f.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>not found</Message></Error>`)
			return
		}
		w.Header().Set("Content-Type", f.types[r.URL.Path])
		_, _ = w.Write(body)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		delete(f.types, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestS3Storage(t *testing.T) (UploadStorage, *fakeS3) {
	t.Helper()

	fake := newFakeS3()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	s, err := NewS3UploadStorage(context.Background(), config.S3{
		Bucket:    "images",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "minio",
		SecretKey: "minio-secret",
	}, logger.Nop())
	require.NoError(t, err)

	return s, fake
}

func TestS3UploadStorage_SaveAndOpen(t *testing.T) {
	s, fake := newTestS3Storage(t)
	ctx := context.Background()

	name, err := s.Save(ctx, "cat.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".png"))

	fake.mu.Lock()
	stored, ok := fake.objects["/images/"+name]
	contentType := fake.types["/images/"+name]
	fake.mu.Unlock()
	require.True(t, ok, "object stored with path-style key")
	assert.Equal(t, "png-bytes", string(stored))
	assert.Equal(t, "image/png", contentType)

	rc, err := s.Open(ctx, name)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestS3UploadStorage_OpenMissing(t *testing.T) {
	s, _ := newTestS3Storage(t)

	_, err := s.Open(context.Background(), "absent.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestS3UploadStorage_Delete(t *testing.T) {
	s, fake := newTestS3Storage(t)
	ctx := context.Background()

	name, err := s.Save(ctx, "cat.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, name))

	fake.mu.Lock()
	_, ok := fake.objects["/images/"+name]
	fake.mu.Unlock()
	assert.False(t, ok)

	_, err = s.Open(ctx, name)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(ctx, "../etc/passwd"), ErrInvalidFilename)
}

func TestS3UploadStorage_OpenInvalidName(t *testing.T) {
	s, _ := newTestS3Storage(t)

	_, err := s.Open(context.Background(), "../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidFilename)
}

func TestNewUploadStorage_PicksBackend(t *testing.T) {
	local, err := NewUploadStorage(context.Background(), config.Storage{
		Files: config.Files{UploadsDir: t.TempDir()},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &localUploadStorage{}, local)

	remote, err := NewUploadStorage(context.Background(), config.Storage{
		S3: config.S3{Bucket: "b", Region: "us-east-1", Endpoint: "http://127.0.0.1:1", AccessKey: "a", SecretKey: "s"},
	}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &s3UploadStorage{}, remote)
}
