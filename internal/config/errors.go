package config

import "errors"

var (
	// ErrInvalidAppConfigs is returned when token or hashing settings are unusable.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when database or upload settings are unusable.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when listener settings are unusable.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs is returned when the client cannot reach a server.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
