package config

import "time"

const (
	DefaultTokenIssuer      = "go-lost-found"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultTokenHeader      = "Authorization"
	DefaultPasswordHashCost = 10
	DefaultVersion          = "dev"
	DefaultLogLevel         = "info"

	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second

	DefaultDBDriver      = DriverPostgres
	DefaultUploadsDir    = "uploads"
	DefaultMaxUploadSize = 5 << 20
	DefaultS3Region      = "us-east-1"

	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 15 * time.Second
)

// Supported values of DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			TokenHeader:      DefaultTokenHeader,
			PasswordHashCost: DefaultPasswordHashCost,
			Version:          DefaultVersion,
			LogLevel:         DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
			Files: Files{
				UploadsDir:    DefaultUploadsDir,
				MaxUploadSize: DefaultMaxUploadSize,
			},
			S3: S3{Region: DefaultS3Region},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}
