package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/mock"
	"github.com/MKhiriev/go-lost-found/internal/service"
	"github.com/MKhiriev/go-lost-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	tokens   *mock.MockTokenService
	accounts *mock.MockAccountService
	items    *mock.MockItemService
	notes    *mock.MockNotesService
	uploads  *mock.MockUploadService
	appInfo  *mock.MockAppInfoService
}

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{TokenHeader: "Authorization"},
		Server: config.Server{
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.Storage{Files: config.Files{MaxUploadSize: 1024}},
	}
}

// newTestHandler builds a Handler whose services are all gomock mocks.
func newTestHandler(t *testing.T, cfg config.StructuredConfig) (*Handler, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		tokens:   mock.NewMockTokenService(ctrl),
		accounts: mock.NewMockAccountService(ctrl),
		items:    mock.NewMockItemService(ctrl),
		notes:    mock.NewMockNotesService(ctrl),
		uploads:  mock.NewMockUploadService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		TokenService:   m.tokens,
		AccountService: m.accounts,
		ItemService:    m.items,
		NotesService:   m.notes,
		UploadService:  m.uploads,
		AppInfoService: m.appInfo,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// newTestRouter returns the fully wired router together with the mocks.
func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()
	h, m := newTestHandler(t, testConfig())
	return h.Init(), m
}

// expectToken makes Verify resolve token to identity.
func expectToken(m serviceMocks, token string, identity models.Identity) {
	m.tokens.EXPECT().Verify(gomock.Any(), token).Return(identity, nil).AnyTimes()
}

var (
	userIdentity  = models.Identity{UserID: "user-1", Role: models.RoleUser}
	adminIdentity = models.Identity{UserID: "admin-1", Role: models.RoleAdmin}
)

func do(t *testing.T, router http.Handler, method, path string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token, "Content-Type": "application/json"}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

type multipartFile struct {
	field    string
	filename string
	content  []byte
}

// multipartBody encodes fields and files and returns the body together with
// its Content-Type.
func multipartBody(t *testing.T, fields map[string]string, files ...multipartFile) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, config.DefaultTokenHeader, h.tokenHeader)
	assert.Equal(t, int64(config.DefaultMaxUploadSize), h.maxUploadSize)
	assert.Zero(t, h.requestTimeout)
}

func TestNewHandler_FromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.App.TokenHeader = "X-Auth-Token"
	svc := &service.Services{}

	h := NewHandler(svc, cfg, logger.Nop())

	assert.Equal(t, svc, h.services)
	assert.Equal(t, "X-Auth-Token", h.tokenHeader)
	assert.Equal(t, int64(1024), h.maxUploadSize)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}
