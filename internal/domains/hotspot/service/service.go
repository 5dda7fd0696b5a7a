package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/internal/domains/hotspot/model"
	"luxhome/internal/domains/hotspot/model/dto"
	"luxhome/internal/domains/hotspot/repository"
	roomModel "luxhome/internal/domains/room/model"
	roomRepo "luxhome/internal/domains/room/repository"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotspot    = "tour_hotspot:get"
	cacheGetAllHotspot = "tour_hotspot:gets"
	cacheCountHotspot  = "tour_hotspot:count"

	fieldRoom          = "room"
	fieldConnectedRoom = "connected_room"
)

type Hotspot interface {
	Create(ctx context.Context, req dto.CreateHotspotRequest) (dto.HotspotResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotspotsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotspotResponse, error)
	Update(ctx context.Context, req dto.UpdateHotspotRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Hotspot
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Hotspot, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotspot {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotspotRequest) (res dto.HotspotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	hotspot := req.ToModel(user)

	room, err := s.getRoom(ctx, hotspot.RoomID)
	if err != nil {
		return res, err
	}

	if room.ID == constant.Empty {
		return res, failure.Validation(fieldRoom, "room not found")
	}

	if err = s.checkConnectedRoom(ctx, room, hotspot.ConnectedRoomID); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, hotspot); err != nil {
		log.Error().Err(err).Msg("failed to create tour hotspot")

		return res, fmt.Errorf("failed to create tour hotspot: %w", err)
	}

	res.FromModel(hotspot)

	s.invalidate(ctx, hotspot.ID, room.ApartmentID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotspotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllHotspot, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (page dto.GetHotspotsResponse, err error) {
			total, err := s.Count(ctx, req, filter)
			if err != nil {
				return page, err
			}

			hotspots, err := s.repo.GetAll(ctx, req, filter)
			if err != nil {
				return page, fmt.Errorf("failed to get tour hotspots: %w", err)
			}

			page.FromModels(hotspots, total, req.Limit)

			return page, nil
		})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountHotspot, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (int, error) {
			total, err := s.repo.Count(ctx, filter)
			if err != nil {
				return 0, fmt.Errorf("failed to count tour hotspots: %w", err)
			}

			return total, nil
		})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotspotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKey(cacheGetHotspot, id), s.cfg.Cache.TTL,
		func(ctx context.Context) (out dto.HotspotResponse, err error) {
			hotspot, err := s.getHotspot(ctx, id)
			if err != nil {
				return out, err
			}

			out.FromModel(hotspot)

			return out, nil
		})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotspotRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getHotspot(ctx, id)
	if err != nil {
		return err
	}

	room, err := s.getRoom(ctx, current.RoomID)
	if err != nil {
		return err
	}

	if err = s.checkConnectedRoom(ctx, room, req.ConnectedRoomID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update tour hotspot")

		return fmt.Errorf("failed to update tour hotspot: %w", err)
	}

	s.invalidate(ctx, current.ID, room.ApartmentID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.getHotspot(ctx, id)
	if err != nil {
		return err
	}

	room, err := s.getRoom(ctx, current.RoomID)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete tour hotspot")

		return fmt.Errorf("failed to delete tour hotspot: %w", err)
	}

	s.invalidate(ctx, current.ID, room.ApartmentID)

	return nil
}

func (s *serviceImpl) getHotspot(ctx context.Context, id string) (model.Hotspot, error) {
	hotspot, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour hotspot")

		return hotspot, fmt.Errorf("failed to get tour hotspot: %w", err)
	}

	if hotspot.ID == constant.Empty {
		return hotspot, failure.NotFound("hotspot not found") // nolint:wrapcheck
	}

	return hotspot, nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName), roomModel.FieldID, roomModel.FieldApartmentID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour room")

		return room, fmt.Errorf("failed to get tour room: %w", err)
	}

	return room, nil
}

// checkConnectedRoom requires a linked room, when given, to share the hotspot room's apartment.
func (s *serviceImpl) checkConnectedRoom(ctx context.Context, room roomModel.Room, connectedRoomID *string) error {
	if connectedRoomID == nil || *connectedRoomID == constant.Empty {
		return nil
	}

	connected, err := s.getRoom(ctx, *connectedRoomID)
	if err != nil {
		return err
	}

	if connected.ID == constant.Empty {
		return failure.Validation(fieldConnectedRoom, "room not found")
	}

	if connected.ApartmentID != room.ApartmentID {
		return failure.Validation(fieldConnectedRoom, "connected room must belong to the same apartment")
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id, apartmentID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		keys := []string{shared.BuildCacheKey(cacheGetHotspot, id)}
		if apartmentID != constant.Empty {
			keys = append(keys, shared.BuildCacheKey(constant.CacheTourPrefix, apartmentID))
		}

		for _, key := range keys {
			if err := s.cache.Delete(c, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to delete tour hotspot cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotspot)
		shared.InvalidateCaches(c, s.cache, cacheCountHotspot)
	}()
}
