package database

//nolint:revive
import (
	"jamat/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Role selects the read replica or the primary.
type Role string

const (
	RoleRead  Role = "read"
	RoleWrite Role = "write"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// PostgresURL builds the connection URL for role. Credentials are escaped and the configured
// prefix is prepended to the database name.
func PostgresURL(cfg *config.Config, role Role) *url.URL {
	target := cfg.DB.Postgres.Write
	if role == RoleRead {
		target = cfg.DB.Postgres.Read
	}

	query := url.Values{}
	if target.SSLMode != "" {
		query.Set("sslmode", target.SSLMode)
	}

	if target.Timezone != "" {
		query.Set("timezone", target.Timezone)
	}

	return &url.URL{
		Scheme:   config.DriverPostgres,
		User:     url.UserPassword(target.Username, target.Password),
		Host:     net.JoinHostPort(target.Host, target.Port),
		Path:     "/" + cfg.DB.Postgres.Prefix + target.Name,
		RawQuery: query.Encode(),
	}
}

// connectPostgres retries up to MaxRetry times, RetryWaitTime seconds apart, and exits the
// process when the database never answers.
func connectPostgres(cfg *config.Config, role Role) *sqlx.DB {
	dsn := PostgresURL(cfg, role)
	attempts := max(cfg.DB.Postgres.MaxRetry, 1)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	logger := log.With().Str("role", string(role)).Str("host", dsn.Host).Str("dbName", dsn.Path[1:]).Logger()

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(config.DriverPostgres, dsn.String())
		if err == nil {
			db.SetMaxIdleConns(postgresMaxIdleConnection)
			db.SetMaxOpenConns(postgresMaxOpenConnection)
			db.SetConnMaxLifetime(postgresConnMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	logger.Fatal().Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}
