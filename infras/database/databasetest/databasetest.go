// Package databasetest opens migrated sqlite databases for repository tests.
package databasetest

import (
	"jamat/config"
	"jamat/helper"
	"jamat/infras/database"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Config returns a sqlite configuration pointing at a fresh file under t.TempDir().
func Config(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.MigrationTable = "schema_migrations"
	cfg.DB.SQLite.Path = filepath.Join(t.TempDir(), "jamat_test.db")

	return cfg
}

// New migrates a temporary sqlite file and returns a connection closed on cleanup.
func New(t *testing.T) *database.Connection {
	t.Helper()

	cfg := Config(t)

	require.NoError(t, helper.Up(cfg))

	conn := database.New(cfg)
	require.NotNil(t, conn.Write)

	t.Cleanup(conn.Close)

	return conn
}

// Exec runs raw fixture statements against the write pool.
func Exec(t *testing.T, conn *database.Connection, statements ...string) {
	t.Helper()

	for _, stmt := range statements {
		_, err := conn.Write.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}
