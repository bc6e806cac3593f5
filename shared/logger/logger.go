package logger

import (
	"io"
	"jamat/config"
	"jamat/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console writer at trace level. Configure narrows it
// once the configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies the configured level and switches to JSON lines in production.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if cfg.Server.Env == constant.ServerEnvProduction {
		UseJSON(os.Stdout, cfg.App.Name)
	}
}

func UseJSON(out io.Writer, service string) {
	zerolog.TimeFieldFormat = time.RFC3339

	log.Logger = zerolog.New(out).With().Timestamp().Str("service", service).Logger()
}

// ErrorWithStack logs err together with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel falls back to trace when the configured level does not parse.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel

		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
