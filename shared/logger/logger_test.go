package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"jamat/config"
	"jamat/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("insert visits failed"))

	assert.Contains(t, buf.String(), "insert visits failed")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "info", expected: zerolog.InfoLevel},
		{logLevel: "warn", expected: zerolog.WarnLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "disabled", expected: zerolog.Disabled},
		{logLevel: "invalid_level", expected: zerolog.TraceLevel},
		{logLevel: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			restore(t)

			log.Logger = log.Output(&bytes.Buffer{})

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestUseJSON(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	logger.UseJSON(&buf, "jamat")
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Info().Int64("host_mosque_id", 2).Msg("visit registered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visit registered", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.EqualValues(t, 2, line["host_mosque_id"])
	assert.Equal(t, "jamat", line["service"])
}

func TestConfigure(t *testing.T) {
	restore(t)

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.Server.LogLevel = "warn"

	logger.Configure(cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
