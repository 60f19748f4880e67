//go:build wireinject
// +build wireinject

package di

import (
	"innkeep/config"
	"innkeep/infras/imagehost"
	"innkeep/infras/otel"
	"innkeep/infras/postgres"
	"innkeep/transport/http"
	"innkeep/transport/http/middleware"
	"innkeep/transport/http/router"

	accommodationRepository "innkeep/internal/domains/accommodation/repository"
	accommodationService "innkeep/internal/domains/accommodation/service"
	pictureRepository "innkeep/internal/domains/picture/repository"
	pictureService "innkeep/internal/domains/picture/service"
	roomRepository "innkeep/internal/domains/room/repository"
	roomService "innkeep/internal/domains/room/service"

	pictureHandler "innkeep/internal/handlers/picture"
	roomHandler "innkeep/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	imagehost.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var accommodationDomain = wire.NewSet(
	accommodationRepository.New,
	accommodationService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var pictureDomain = wire.NewSet(
	pictureRepository.New,
	pictureService.New,
)

var domains = wire.NewSet(
	accommodationDomain,
	roomDomain,
	pictureDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	pictureHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
