package database

import (
	"context"
	"errors"
	"fmt"
	"jamat/config"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var errNoConnection = errors.New("database connection is not available")

// Connection holds the read and write pools. Both point at the same pool for sqlite.
type Connection struct {
	Driver string
	Read   *sqlx.DB
	Write  *sqlx.DB
}

// New opens the pools for the configured driver.
func New(cfg *config.Config) *Connection {
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db := CreateSQLiteConnection(cfg.DB.SQLite.Path)

		return &Connection{Driver: config.DriverSQLite, Read: db, Write: db}
	default:
		return &Connection{
			Driver: config.DriverPostgres,
			Read:   connectPostgres(cfg, RoleRead),
			Write:  connectPostgres(cfg, RoleWrite),
		}
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if c == nil || c.Read == nil || c.Write == nil {
		return errNoConnection
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write database: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read database: %w", err)
	}

	return nil
}

// WithTransaction runs fn inside a write transaction, committing on success and rolling back otherwise.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	if c == nil || c.Write == nil {
		return errNoConnection
	}

	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction")
			}

			return
		}

		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit transaction: %w", err)
		}
	}()

	return fn(tx)
}

func (c *Connection) Close() {
	if c == nil {
		return
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write database")
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read database")
		}
	}
}
