package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"key": "value"}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, w.Body.Len(), n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"key":"value"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, math.Inf(1), http.StatusOK)
	require.Error(t, err)

	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Email string `json:"email"`
	}

	tests := []struct {
		name      string
		body      string
		want      string
		wantErr   bool
		wantEmpty bool
	}{
		{name: "valid", body: `{"email":"a@b.c"}`, want: "a@b.c"},
		{name: "empty", body: "", wantErr: true, wantEmpty: true},
		{name: "malformed", body: `{"email":`, wantErr: true},
		{name: "unknown field", body: `{"email":"a@b.c","role":"admin"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			err := DecodeJSON(r, &dst)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantEmpty {
					assert.ErrorIs(t, err, ErrEmptyBody)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dst.Email)
		})
	}
}
