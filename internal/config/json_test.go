package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"token_sign_key": "secret",
			"token_issuer": "iss",
			"token_duration": "90m",
			"token_header": "X-Token",
			"password_hash_cost": 12,
			"version": "2.0.0",
			"log_level": "error"
		},
		"storage": {
			"db": {"driver": "pgx", "dsn": "postgres://localhost/db"},
			"files": {"uploads_dir": "/data", "max_upload_size": 100},
			"s3": {"bucket": "b", "region": "r", "endpoint": "http://e", "access_key": "a", "secret_key": "s"}
		},
		"server": {"http_address": "localhost:9000", "request_timeout": 5000000000},
		"adapter": {"http_address": "http://localhost:9000", "request_timeout": "3s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{
		TokenSignKey:     "secret",
		TokenIssuer:      "iss",
		TokenDuration:    90 * time.Minute,
		TokenHeader:      "X-Token",
		PasswordHashCost: 12,
		Version:          "2.0.0",
		LogLevel:         "error",
	}, cfg.App)
	assert.Equal(t, DB{Driver: "pgx", DSN: "postgres://localhost/db"}, cfg.Storage.DB)
	assert.Equal(t, Files{UploadsDir: "/data", MaxUploadSize: 100}, cfg.Storage.Files)
	assert.Equal(t, S3{Bucket: "b", Region: "r", Endpoint: "http://e", AccessKey: "a", SecretKey: "s"}, cfg.Storage.S3)
	assert.Equal(t, Server{HTTPAddress: "localhost:9000", RequestTimeout: 5 * time.Second}, cfg.Server)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:9000", RequestTimeout: 3 * time.Second}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeJSONFile(t, `{"app": `))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", in: `"1h"`, want: time.Hour},
		{name: "number", in: `1000`, want: time.Microsecond},
		{name: "bad string", in: `"later"`, wantErr: true},
		{name: "bool", in: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
