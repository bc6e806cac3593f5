package main

import (
	"jamat/config"
	"jamat/di"
	"jamat/helper"
	"jamat/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Jamat API
// @version 1.0
// @description Visits between mosques and external groups.
// @BasePath /
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	if cfg.DB.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
