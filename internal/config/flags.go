package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port pair accepted by the -a flag.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server command-line flags from args.
// Flags that are not given leave the corresponding fields zero.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var dbDriver, databaseDSN string
	var uploadsDir string
	var maxUploadSize int64
	var tokenSignKey, tokenIssuer, tokenHeader string
	var tokenDuration, requestTimeout time.Duration
	var hashCost int
	var logLevel string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&uploadsDir, "uploads-dir", "", "Directory for uploaded images")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Largest accepted upload in bytes")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&tokenHeader, "token-header", "", "Header carrying the token")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&hashCost, "hash-cost", 0, "bcrypt cost")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			TokenHeader:      tokenHeader,
			PasswordHashCost: hashCost,
			LogLevel:         logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
			Files: Files{
				UploadsDir:    uploadsDir,
				MaxUploadSize: maxUploadSize,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(strings.Trim(host, "[]")) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
