package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxhome/config"
	"luxhome/infras/otel"
	apartmentModel "luxhome/internal/domains/apartment/model"
	apartmentRepo "luxhome/internal/domains/apartment/repository"
	connectionModel "luxhome/internal/domains/connection/model"
	connectionRepo "luxhome/internal/domains/connection/repository"
	hotspotModel "luxhome/internal/domains/hotspot/model"
	hotspotRepo "luxhome/internal/domains/hotspot/repository"
	roomModel "luxhome/internal/domains/room/model"
	roomRepo "luxhome/internal/domains/room/repository"
	"luxhome/internal/domains/tour/model"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"
	"luxhome/shared/metrics"

	"github.com/rs/zerolog/log"
)

const (
	sourceCache    = "cache"
	sourceDatabase = "database"
)

type Tour interface {
	Build(ctx context.Context, slug string) (model.Tour, error)
}

type serviceImpl struct {
	apartmentRepo  apartmentRepo.Apartment
	roomRepo       roomRepo.Room
	connectionRepo connectionRepo.Connection
	hotspotRepo    hotspotRepo.Hotspot
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	apartmentRepo apartmentRepo.Apartment,
	roomRepo roomRepo.Room,
	connectionRepo connectionRepo.Connection,
	hotspotRepo hotspotRepo.Hotspot,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Tour {
	return &serviceImpl{
		apartmentRepo:  apartmentRepo,
		roomRepo:       roomRepo,
		connectionRepo: connectionRepo,
		hotspotRepo:    hotspotRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Build returns the tour of the apartment identified by slug. Unknown apartments and
// apartments without rooms both fail with a not-found error.
func (s *serviceImpl) Build(ctx context.Context, slug string) (res model.Tour, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	apartment, err := s.apartmentRepo.Get(ctx, shared.FilterByID(slug, apartmentModel.FieldSlug, apartmentModel.TableName),
		apartmentModel.FieldID, apartmentModel.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartment")

		return res, fmt.Errorf("failed to get apartment: %w", err)
	}

	if apartment.ID == constant.Empty {
		return res, failure.NotFound(model.MsgApartmentNotFound) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheTourPrefix, apartment.ID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		metrics.ObserveTourBuild(sourceCache)

		return res, nil
	}

	rooms, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{OrderBy: roomModel.TourOrder},
		shared.FilterByID(apartment.ID, roomModel.FieldApartmentID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour rooms")

		return res, fmt.Errorf("failed to get tour rooms: %w", err)
	}

	if len(rooms) == 0 {
		return res, failure.NotFound(model.MsgNoTour) // nolint:wrapcheck
	}

	roomIDs := make([]string, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	connections, err := s.connectionRepo.GetDetails(ctx, inRooms(connectionModel.FieldFromRoomID, connectionModel.TableName, roomIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room connections")

		return res, fmt.Errorf("failed to get room connections: %w", err)
	}

	hotspots, err := s.hotspotRepo.GetAll(ctx,
		gDto.QueryParams{OrderBy: hotspotModel.TableName + "." + hotspotModel.FieldCreatedAt + " ASC"},
		inRooms(hotspotModel.FieldRoomID, hotspotModel.TableName, roomIDs))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour hotspots")

		return res, fmt.Errorf("failed to get tour hotspots: %w", err)
	}

	res, err = model.Assemble(apartment.ID, apartment.Name, rooms, connections, hotspots, s.cfg.App.PublicBaseURL)
	if err != nil {
		return res, failure.NotFound(err.Error()) // nolint:wrapcheck
	}

	metrics.ObserveTourBuild(sourceDatabase)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tour to cache")
		}
	}()

	return res, nil
}

func inRooms(field, table string, roomIDs []string) gDto.FilterGroup {
	return gDto.And(gDto.In(table, field, roomIDs))
}
