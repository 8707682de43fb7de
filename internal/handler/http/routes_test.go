package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-lost-found/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInit_ProtectedRoutes_RequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/profile"},
		{http.MethodPost, "/admin/profile"},
		{http.MethodPost, "/user/update"},
		{http.MethodGet, "/getUsers"},
		{http.MethodPost, "/addItem"},
		{http.MethodGet, "/getItems"},
		{http.MethodPost, "/notes/add"},
		{http.MethodGet, "/getnotes"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := do(t, router, rt.method, rt.path, nil, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_RoleSeparation(t *testing.T) {
	router, m := newTestRouter(t)
	expectToken(m, "user-token", userIdentity)
	expectToken(m, "admin-token", adminIdentity)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "user cannot list users", method: http.MethodGet, path: "/getUsers", token: "user-token"},
		{name: "user cannot add notes", method: http.MethodPost, path: "/notes/add", token: "user-token"},
		{name: "admin cannot update user profile", method: http.MethodPost, path: "/user/update", token: "admin-token"},
		{name: "admin cannot report items", method: http.MethodPost, path: "/addItem", token: "admin-token"},
		{name: "admin cannot list items", method: http.MethodGet, path: "/getItems", token: "admin-token"},
		{name: "admin cannot list notes", method: http.MethodGet, path: "/getnotes", token: "admin-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, tt.method, tt.path, strings.NewReader("{}"), bearer(tt.token))
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "Access denied", decodeError(t, rec).Message)
		})
	}
}

func TestInit_ProfileOpenToBothRoles(t *testing.T) {
	router, m := newTestRouter(t)
	expectToken(m, "user-token", userIdentity)
	expectToken(m, "admin-token", adminIdentity)

	m.accounts.EXPECT().Profile(gomock.Any(), userIdentity).Return(models.PublicUser{UserID: "user-1"}, nil).Times(2)
	m.accounts.EXPECT().Profile(gomock.Any(), adminIdentity).Return(models.PublicUser{UserID: "admin-1"}, nil).Times(2)

	for _, path := range []string{"/profile", "/admin/profile"} {
		for _, token := range []string{"user-token", "admin-token"} {
			rec := do(t, router, http.MethodPost, path, nil, bearer(token))
			assert.Equal(t, http.StatusOK, rec.Code, "%s with %s", path, token)
		}
	}
}

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/", "/unknown", "/api/user/login", "/admin"} {
		rec := do(t, router, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Not found", decodeError(t, rec).Message)
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct{ method, path string }{
		{http.MethodGet, "/signup"},
		{http.MethodDelete, "/signin"},
		{http.MethodPut, "/profile"},
		{http.MethodPost, "/getUsers"},
		{http.MethodPost, "/api/version"},
	}

	for _, tt := range tests {
		rec := do(t, router, tt.method, tt.path, nil, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tt.method, tt.path)
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0").Times(2)

	rec := do(t, router, http.MethodGet, "/api/version", nil, nil)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	rec = do(t, router, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "trace-42"})
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestInit_SecureHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/nowhere", nil, nil)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestInit_CORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodOptions, "/signin", nil, map[string]string{
		"Origin":                         "https://app.example.com",
		"Access-Control-Request-Method":  http.MethodPost,
		"Access-Control-Request-Headers": "Content-Type, Authorization",
	})

	require.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_GzipResponses(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	rec := do(t, router, http.MethodGet, "/api/version", nil, map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
}
