package database

//nolint:revive
import (
	"fmt"
	"jamat/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// sqlite allows one writer at a time; a single connection keeps transactions serialized.
const sqliteMaxOpenConnection = 1

// SQLiteDSN enables foreign keys and WAL for the given file path.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
}

// CreateSQLiteConnection opens the sqlite file, creating it when missing.
func CreateSQLiteConnection(path string) *sqlx.DB {
	db, err := sqlx.Connect(config.DriverSQLite, SQLiteDSN(path))
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed opening sqlite database")

		return nil
	}

	db.SetMaxOpenConns(sqliteMaxOpenConnection)

	log.Info().Str("path", path).Msg("Connected to database")

	return db
}
