//go:build wireinject
// +build wireinject

package di

import (
	"jamat/config"
	"jamat/infras/broker"
	"jamat/infras/database"
	"jamat/infras/jwt"
	"jamat/infras/otel"
	"jamat/infras/redis"
	"jamat/infras/s3"
	"jamat/internal/cli"
	authService "jamat/internal/domains/auth/service"
	contactRepository "jamat/internal/domains/contact/repository"
	contactService "jamat/internal/domains/contact/service"
	dashboardService "jamat/internal/domains/dashboard/service"
	groupRepository "jamat/internal/domains/group/repository"
	groupService "jamat/internal/domains/group/service"
	mosqueRepository "jamat/internal/domains/mosque/repository"
	mosqueService "jamat/internal/domains/mosque/service"
	visitRepository "jamat/internal/domains/visit/repository"
	visitService "jamat/internal/domains/visit/service"
	authHandler "jamat/internal/handlers/auth"
	contactHandler "jamat/internal/handlers/contact"
	dashboardHandler "jamat/internal/handlers/dashboard"
	groupHandler "jamat/internal/handlers/group"
	mosqueHandler "jamat/internal/handlers/mosque"
	visitHandler "jamat/internal/handlers/visit"
	"jamat/permissions"
	"jamat/shared/cache"
	"jamat/transport/http"
	"jamat/transport/http/middleware"
	"jamat/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
	today,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	broker.New,
	wire.Bind(new(broker.Publisher), new(broker.Broker)),
)

var httpInfrastructures = wire.NewSet(
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var mosqueDomain = wire.NewSet(
	mosqueRepository.New,
	mosqueService.New,
)

var groupDomain = wire.NewSet(
	groupRepository.New,
	groupService.New,
)

var visitDomain = wire.NewSet(
	visitRepository.New,
	visitService.New,
	dashboardService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	mosqueDomain,
	groupDomain,
	visitDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	mosqueHandler.New,
	groupHandler.New,
	visitHandler.New,
	dashboardHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		httpInfrastructures,
		middlewares,
		sharedHelpers,
		domains,
		contactDomain,
		authService.New,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeAdmin() *cli.App {
	wire.Build(
		configurations,
		infrastructures,
		s3.New,
		domains,
		wire.Struct(new(cli.App), "*"),
	)

	return &cli.App{}
}
