// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the root configuration of the service.
//
// Every section is read from environment variables with the prefix given by
// its envPrefix tag, so App.TokenSignKey is APP_TOKEN_SIGN_KEY and
// Storage.DB.DSN is STORAGE_DB_DATABASE_URI.
type StructuredConfig struct {
	// App holds token, hashing and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds database and upload storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the command-line client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App contains settings of the authentication layer.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify tokens. Required.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is written to and checked against the "iss" claim.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// TokenHeader is the request header the token is read from. For
	// "Authorization" the value must use the Bearer scheme.
	TokenHeader string `env:"TOKEN_HEADER"`

	// PasswordHashCost is the bcrypt work factor.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// Version is reported by GET /api/version.
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	LogLevel string `env:"LOG_LEVEL"`
}

// Server contains HTTP listener settings.
type Server struct {
	// HTTPAddress is the host:port the server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	Files Files `envPrefix:"FILES_"`

	S3 S3 `envPrefix:"S3_"`
}

// DB contains relational database settings.
type DB struct {
	// Driver is either "pgx" (PostgreSQL) or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the driver-specific connection string.
	DSN string `env:"DATABASE_URI"`
}

// Files contains settings of uploaded images.
type Files struct {
	// UploadsDir is the directory of the local upload backend.
	UploadsDir string `env:"UPLOADS_DIR"`

	// MaxUploadSize is the largest accepted file in bytes.
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// S3 contains settings of the S3-compatible upload backend. The backend is
// enabled when Bucket is set.
type S3 struct {
	Bucket    string `env:"BUCKET"`
	Region    string `env:"REGION"`
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Adapter contains settings of the command-line client.
type Adapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Enabled reports whether the S3 backend is configured.
func (s S3) Enabled() bool {
	return s.Bucket != ""
}

// GetStructuredConfig loads the server configuration from environment
// variables, command-line flags and an optional JSON file, fills defaults and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
