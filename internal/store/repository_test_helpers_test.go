package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

// newSQLiteTestDB opens a private in-memory database with the schema applied.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := NewConnectSQLite(context.Background(), config.DB{Driver: config.DriverSQLite, DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
