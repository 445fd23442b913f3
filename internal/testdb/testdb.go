//go:build integration

// Package testdb provides utilities for database integration testing.
// Tests acquire a shared connection from DATABASE_URL and run inside a
// transaction that is always rolled back, so parallel tests never see each
// other's rows.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/stretchr/testify/require"

	"github.com/taskora/taskora-api/internal/platform/postgres"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 5 * time.Second

var (
	sharedDB   *sql.DB
	sharedErr  error
	sharedOnce sync.Once
)

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that integration tests can be run.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// GetTestDBWithT returns a migrated database handle, shared across tests.
// The calling test fails if the database is unreachable.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	sharedOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := sql.Open("pgx", os.Getenv("DATABASE_URL"))
		if err != nil {
			sharedErr = err
			return
		}

		if err := db.PingContext(ctx); err != nil {
			sharedErr = err
			return
		}

		if err := postgres.RunMigrations(ctx, db); err != nil {
			sharedErr = err
			return
		}

		sharedDB = db
	})

	require.NoError(t, sharedErr, "Failed to set up test database")
	return sharedDB
}

// WithTx runs fn inside a transaction that is rolled back afterwards,
// keeping tests isolated from one another.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	defer func() {
		// Rollback errors after a completed test are irrelevant; the
		// connection may already be closed.
		_ = tx.Rollback()
	}()

	fn(t, tx)
}
