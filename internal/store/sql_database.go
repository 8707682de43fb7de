package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a database/sql pool together with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format and
// an error classifier for the driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database for cfg.Driver ("pgx" or "sqlite3").
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// classify converts a driver error into one of the store sentinels, keeping
// the original error in the chain.
func (db *DB) classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	classification := NonRetryable
	if db.errorClassificator != nil {
		classification = db.errorClassificator.Classify(err)
	}

	switch classification {
	case UniqueViolation:
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case Retryable:
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// inTx runs fn inside a transaction that is committed when fn returns nil
// and rolled back otherwise.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
