package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"jamat/config"
	"jamat/infras/database"
	"jamat/migrations"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("invalid direction, use 'up', 'down', 'drop' or 'step-up'")

// databaseURL builds the golang-migrate URL for the configured driver.
func databaseURL(cfg *config.Config) string {
	if cfg.DB.Driver == config.DriverSQLite {
		return fmt.Sprintf("sqlite3://%s?x-migrations-table=%s",
			cfg.DB.SQLite.Path,
			url.QueryEscape(cfg.DB.MigrationTable),
		)
	}

	target := database.PostgresURL(cfg, database.RoleWrite)

	query := target.Query()
	query.Set("x-migrations-table", cfg.DB.MigrationTable)
	target.RawQuery = query.Encode()

	return target.String()
}

func sourceDir(cfg *config.Config) string {
	if cfg.DB.Driver == config.DriverSQLite {
		return config.DriverSQLite
	}

	return config.DriverPostgres
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, sourceDir(cfg))
	if err != nil {
		return nil, fmt.Errorf("error opening embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", source, databaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("error closing migrate instance")
		}
	}()

	switch action {
	case ActionUp:
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Str("driver", cfg.DB.Driver).Msg("Database migrations completed successfully")

		return nil
	case ActionDown:
		if err := mig.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	case ActionStepUp:
		if err := mig.Steps(1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error running migrations: %w", err)
		}

		log.Info().Msg("Database migrations completed successfully")

		return nil
	case ActionDrop:
		if err := mig.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("error rolling back migrations: %w", err)
		}

		log.Info().Msg("Database migrations rolled back successfully")

		return nil
	}

	return ErrUnknownAction
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
