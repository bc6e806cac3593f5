package database_test

import (
	"context"
	"errors"
	"jamat/config"
	"jamat/infras/database"
	"jamat/infras/database/databasetest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMosques(t *testing.T, db *sqlx.DB) int {
	t.Helper()

	var n int
	require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM mosques"))

	return n
}

func TestWithTransaction(t *testing.T) {
	conn := databasetest.New(t)
	ctx := context.Background()

	require.NoError(t, conn.Ping(ctx))

	err := conn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO mosques (name) VALUES ('Masjid Al-Noor')")

		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countMosques(t, conn.Read))

	rollback := errors.New("abort")
	err = conn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO mosques (name) VALUES ('Masjid Baitul')"); err != nil {
			return err
		}

		return rollback
	})
	assert.ErrorIs(t, err, rollback)
	assert.Equal(t, 1, countMosques(t, conn.Read))
}

func TestForeignKeysEnforced(t *testing.T) {
	conn := databasetest.New(t)

	_, err := conn.Write.Exec("INSERT INTO visits (host_mosque_id, visiting_group_id, start_date, end_date) VALUES (99, 1, '2025-01-01', '2025-01-01')")
	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "wa_"
	cfg.DB.Postgres.Write.Host = "primary.internal"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "jamat"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "visits"
	cfg.DB.Postgres.Write.SSLMode = "disable"
	cfg.DB.Postgres.Read.Host = "replica.internal"
	cfg.DB.Postgres.Read.Port = "5433"
	cfg.DB.Postgres.Read.Username = "reader"
	cfg.DB.Postgres.Read.Name = "visits"
	cfg.DB.Postgres.Read.Timezone = "Australia/Perth"

	write := database.PostgresURL(cfg, database.RoleWrite)
	assert.Equal(t, "primary.internal:5432", write.Host)
	assert.Equal(t, "/wa_visits", write.Path)
	assert.Equal(t, "disable", write.Query().Get("sslmode"))

	password, ok := write.User.Password()
	require.True(t, ok)
	assert.Equal(t, "p@ss/word", password)
	assert.Contains(t, write.String(), "p%40ss%2Fword")

	read := database.PostgresURL(cfg, database.RoleRead)
	assert.Equal(t, "replica.internal:5433", read.Host)
	assert.Equal(t, "reader", read.User.Username())
	assert.Equal(t, "Australia/Perth", read.Query().Get("timezone"))
	assert.Empty(t, read.Query().Get("sslmode"))
}
