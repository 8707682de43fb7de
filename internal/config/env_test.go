// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvKeys = []string{
	"CONFIG",

	"APP_TOKEN_SIGN_KEY",
	"APP_TOKEN_ISSUER",
	"APP_TOKEN_DURATION",
	"APP_TOKEN_HEADER",
	"APP_PASSWORD_HASH_COST",
	"APP_VERSION",
	"APP_LOG_LEVEL",

	"SERVER_ADDRESS",
	"SERVER_REQUEST_TIMEOUT",

	"STORAGE_DB_DRIVER",
	"STORAGE_DB_DATABASE_URI",
	"STORAGE_FILES_UPLOADS_DIR",
	"STORAGE_FILES_MAX_UPLOAD_SIZE",
	"STORAGE_S3_BUCKET",
	"STORAGE_S3_REGION",
	"STORAGE_S3_ENDPOINT",
	"STORAGE_S3_ACCESS_KEY",
	"STORAGE_S3_SECRET_KEY",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":     "jwt_secret",
		"APP_TOKEN_ISSUER":       "test_issuer",
		"APP_TOKEN_DURATION":     "1h",
		"APP_TOKEN_HEADER":       "X-Auth-Token",
		"APP_PASSWORD_HASH_COST": "12",
		"APP_VERSION":            "1.2.3",
		"APP_LOG_LEVEL":          "warn",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"STORAGE_DB_DRIVER":             "sqlite3",
		"STORAGE_DB_DATABASE_URI":       "file:test.db",
		"STORAGE_FILES_UPLOADS_DIR":     "/var/uploads",
		"STORAGE_FILES_MAX_UPLOAD_SIZE": "1048576",
		"STORAGE_S3_BUCKET":             "images",
		"STORAGE_S3_REGION":             "eu-west-1",
		"STORAGE_S3_ENDPOINT":           "http://minio:9000",
		"STORAGE_S3_ACCESS_KEY":         "ak",
		"STORAGE_S3_SECRET_KEY":         "sk",

		"ADAPTER_ADDRESS":         "http://server:8080",
		"ADAPTER_REQUEST_TIMEOUT": "5s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "X-Auth-Token", cfg.App.TokenHeader)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:test.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/uploads", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, int64(1048576), cfg.Storage.Files.MaxUploadSize)
	assert.Equal(t, S3{
		Bucket:    "images",
		Region:    "eu-west-1",
		Endpoint:  "http://minio:9000",
		AccessKey: "ak",
		SecretKey: "sk",
	}, cfg.Storage.S3)

	assert.Equal(t, "http://server:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "only-key",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-key", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.App.TokenDuration)
	assert.Empty(t, cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "duration", key: "APP_TOKEN_DURATION", val: "not-a-duration"},
		{name: "int", key: "APP_PASSWORD_HASH_COST", val: "ten"},
		{name: "int64", key: "STORAGE_FILES_MAX_UPLOAD_SIZE", val: "5MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{tt.key: tt.val})

			err := parseEnv(&StructuredConfig{})
			assert.Error(t, err)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range configEnvKeys {
		old, ok := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		if ok {
			t.Cleanup(func() { _ = os.Setenv(key, old) })
		}
	}
}
