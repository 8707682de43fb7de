// Package migrations holds the embedded database schema and applies it with
// goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding its migrations.
var dialects = map[string]struct {
	goose string
	dir   string
}{
	"pgx":     {goose: "postgres", dir: "postgres"},
	"sqlite3": {goose: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for the given driver ("pgx" or
// "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.goose); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
