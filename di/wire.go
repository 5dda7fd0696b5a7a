//go:build wireinject
// +build wireinject

package di

import (
	"luxhome/config"
	"luxhome/infras/jwt"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/infras/redis"
	"luxhome/infras/s3"
	"luxhome/permissions"
	"luxhome/shared/cache"
	"luxhome/shared/metrics"
	"luxhome/transport/http"
	"luxhome/transport/http/middleware"
	"luxhome/transport/http/router"

	apartmentRepository "luxhome/internal/domains/apartment/repository"
	apartmentService "luxhome/internal/domains/apartment/service"
	authService "luxhome/internal/domains/auth/service"
	connectionRepository "luxhome/internal/domains/connection/repository"
	connectionService "luxhome/internal/domains/connection/service"
	editorService "luxhome/internal/domains/editor/service"
	hotspotRepository "luxhome/internal/domains/hotspot/repository"
	hotspotService "luxhome/internal/domains/hotspot/service"
	roomRepository "luxhome/internal/domains/room/repository"
	roomService "luxhome/internal/domains/room/service"
	tourService "luxhome/internal/domains/tour/service"
	userRepository "luxhome/internal/domains/user/repository"
	userService "luxhome/internal/domains/user/service"

	apartmentHandler "luxhome/internal/handlers/apartment"
	authHandler "luxhome/internal/handlers/auth"
	connectionHandler "luxhome/internal/handlers/connection"
	editorHandler "luxhome/internal/handlers/editor"
	hotspotHandler "luxhome/internal/handlers/hotspot"
	roomHandler "luxhome/internal/handlers/room"
	tourHandler "luxhome/internal/handlers/tour"
	userHandler "luxhome/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var tourDomain = wire.NewSet(
	apartmentRepository.New,
	apartmentService.New,
	roomRepository.New,
	roomService.New,
	connectionRepository.New,
	connectionService.New,
	hotspotRepository.New,
	hotspotService.New,
	editorService.New,
	tourService.New,
)

var domains = wire.NewSet(
	authDomain,
	tourDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	apartmentHandler.New,
	tourHandler.New,
	roomHandler.New,
	connectionHandler.New,
	hotspotHandler.New,
	editorHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
