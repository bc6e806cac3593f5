package cli

import (
	"context"
	"jamat/config"
	"jamat/infras/broker"
	"jamat/infras/database"
	"jamat/infras/otel"
	"jamat/infras/s3"
	dashboardService "jamat/internal/domains/dashboard/service"
	groupService "jamat/internal/domains/group/service"
	mosqueService "jamat/internal/domains/mosque/service"
	visitService "jamat/internal/domains/visit/service"

	"github.com/rs/zerolog/log"
)

// App is everything the admin commands need, built once per invocation.
type App struct {
	Config    *config.Config
	DB        *database.Connection
	Otel      otel.Otel
	Mosques   mosqueService.Mosque
	Groups    groupService.Group
	Visits    visitService.Visit
	Dashboard dashboardService.Dashboard
	Broker    broker.Broker
	Storage   s3.S3
}

// Close releases the connections opened for the command.
func (a *App) Close(ctx context.Context) {
	if a.Broker != nil {
		if err := a.Broker.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close event broker")
		}
	}

	if a.Otel != nil {
		if err := a.Otel.Shutdown(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to flush traces")
		}
	}

	if a.DB != nil {
		a.DB.Close()
	}
}
