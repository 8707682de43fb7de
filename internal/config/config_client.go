package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the command-line client, assembled
// from [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	// TokenHeader is the header the client sends the token in.
	TokenHeader string
}

// GetClientConfig builds and validates the client view of the configuration
// from environment variables and an optional JSON file. Command-line flags
// belong to the client itself and are not read here.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		TokenHeader: cfg.App.TokenHeader,
	}

	return clientCfg, clientCfg.validate()
}
