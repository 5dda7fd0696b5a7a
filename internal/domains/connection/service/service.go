package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/internal/domains/connection/model"
	"luxhome/internal/domains/connection/model/dto"
	"luxhome/internal/domains/connection/repository"
	roomModel "luxhome/internal/domains/room/model"
	roomRepo "luxhome/internal/domains/room/repository"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"
	"luxhome/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetConnection    = "room_connection:get"
	cacheGetAllConnection = "room_connection:gets"
	cacheCountConnection  = "room_connection:count"

	fieldFromRoom = "from_room"
	fieldToRoom   = "to_room"
)

type Connection interface {
	Create(ctx context.Context, req dto.CreateConnectionRequest) (dto.ConnectionResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetConnectionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ConnectionResponse, error)
	Update(ctx context.Context, req dto.UpdateConnectionRequest, id string) error
	Delete(ctx context.Context, id string) error
	DeleteFromRoom(ctx context.Context, roomID, id string) error
	Reposition(ctx context.Context, roomID, id string, x, y float64) error
}

type serviceImpl struct {
	repo       repository.Connection
	roomRepo   roomRepo.Room
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Connection,
	roomRepo roomRepo.Room,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Connection {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Create checks both rooms inside the write transaction: they must exist, share an
// apartment and differ. A repeated pair fails with ErrDuplicateConnection.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateConnectionRequest) (res dto.ConnectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	connection := req.ToModel(user)

	var apartmentID string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		from, to, err := s.loadRoomsTx(ctx, tx, connection.FromRoomID, connection.ToRoomID)
		if err != nil {
			return err
		}

		if err := validateRooms(from, to); err != nil {
			return err
		}

		apartmentID = from.ApartmentID

		return s.repo.InsertTx(ctx, tx, connection) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create room connection")

		return res, translate(err, "failed to create room connection")
	}

	res.FromModel(connection)

	s.invalidate(ctx, connection.ID, apartmentID)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetConnectionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllConnection, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (page dto.GetConnectionsResponse, err error) {
			total, err := s.Count(ctx, req, filter)
			if err != nil {
				return page, err
			}

			connections, err := s.repo.GetAll(ctx, req, filter)
			if err != nil {
				return page, fmt.Errorf("failed to get room connections: %w", err)
			}

			page.FromModels(connections, total, req.Limit)

			return page, nil
		})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountConnection, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (int, error) {
			total, err := s.repo.Count(ctx, filter)
			if err != nil {
				return 0, fmt.Errorf("failed to count room connections: %w", err)
			}

			return total, nil
		})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ConnectionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKey(cacheGetConnection, id), s.cfg.Cache.TTL,
		func(ctx context.Context) (out dto.ConnectionResponse, err error) {
			connection, err := s.getConnection(ctx, id)
			if err != nil {
				return out, err
			}

			out.FromModel(connection)

			return out, nil
		})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateConnectionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getConnection(ctx, id)
	if err != nil {
		return err
	}

	toRoomID := current.ToRoomID
	if req.ToRoomID != constant.Empty {
		toRoomID = req.ToRoomID
	}

	updatedFields := shared.TransformFields(req, user)

	var apartmentID string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		from, to, err := s.loadRoomsTx(ctx, tx, current.FromRoomID, toRoomID)
		if err != nil {
			return err
		}

		if err := validateRooms(from, to); err != nil {
			return err
		}

		apartmentID = from.ApartmentID

		return s.repo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(current.ID, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update room connection")

		return translate(err, "failed to update room connection")
	}

	s.invalidate(ctx, current.ID, apartmentID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.getConnection(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room connection")

		return fmt.Errorf("failed to delete room connection: %w", err)
	}

	s.invalidateForRoom(ctx, current.ID, current.FromRoomID)

	return nil
}

// DeleteFromRoom removes the connection only when it leaves roomID.
func (s *serviceImpl) DeleteFromRoom(ctx context.Context, roomID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteFromRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	deleted, err := s.repo.DeleteCount(ctx, ownedBy(roomID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to delete room connection")

		return fmt.Errorf("failed to delete room connection: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound("connection not found")
	}

	s.invalidateForRoom(ctx, id, roomID)

	return nil
}

// Reposition overwrites only the hotspot position of a connection leaving roomID.
func (s *serviceImpl) Reposition(ctx context.Context, roomID, id string, x, y float64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reposition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if x < model.MinPosition || x > model.MaxPosition {
		return failure.Validation(model.FieldHotspotX, fmt.Sprintf("must be between 0 and 100, got %g", x))
	}

	if y < model.MinPosition || y > model.MaxPosition {
		return failure.Validation(model.FieldHotspotY, fmt.Sprintf("must be between 0 and 100, got %g", y))
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	position := map[string]any{
		model.FieldHotspotX:      x,
		model.FieldHotspotY:      y,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	updated, err := s.repo.UpdateCount(ctx, position, ownedBy(roomID, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to reposition room connection")

		return fmt.Errorf("failed to reposition room connection: %w", err)
	}

	if updated == 0 {
		return failure.NotFound("connection not found")
	}

	s.invalidateForRoom(ctx, id, roomID)

	return nil
}

func (s *serviceImpl) getConnection(ctx context.Context, id string) (model.Connection, error) {
	connection, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room connection")

		return connection, fmt.Errorf("failed to get room connection: %w", err)
	}

	if connection.ID == constant.Empty {
		return connection, failure.NotFound("connection not found") // nolint:wrapcheck
	}

	return connection, nil
}

// loadRoomsTx locks both rooms in id order so two opposite creations cannot deadlock.
func (s *serviceImpl) loadRoomsTx(ctx context.Context, tx *sqlx.Tx, fromID, toID string) (from, to roomModel.Room, err error) {
	ids := []string{fromID, toID}
	if toID < fromID {
		ids = []string{toID, fromID}
	}

	rooms := make(map[string]roomModel.Room, len(ids))

	for _, id := range ids {
		if _, ok := rooms[id]; ok {
			continue
		}

		room, err := s.roomRepo.GetTx(ctx, tx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			return from, to, fmt.Errorf("failed to load tour room: %w", err)
		}

		rooms[id] = room
	}

	return rooms[fromID], rooms[toID], nil
}

func validateRooms(from, to roomModel.Room) error {
	if from.ID == constant.Empty {
		return failure.Validation(fieldFromRoom, "room not found")
	}

	if to.ID == constant.Empty {
		return failure.Validation(fieldToRoom, "room not found")
	}

	if from.ApartmentID != to.ApartmentID {
		return failure.Validation(fieldToRoom, "rooms must belong to the same apartment")
	}

	if from.ID == to.ID {
		return failure.Validation(fieldToRoom, "room cannot connect to itself")
	}

	return nil
}

func ownedBy(roomID, id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Eq(model.TableName, model.FieldFromRoomID, roomID),
	)
}

func translate(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	if errors.Is(err, model.ErrDuplicateConnection) {
		return failure.BadRequest(model.ErrDuplicateConnection)
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func (s *serviceImpl) invalidate(ctx context.Context, id, apartmentID string) {
	go func() {
		c := context.WithoutCancel(ctx)
		s.clearCaches(c, id, apartmentID)
	}()
}

// invalidateForRoom resolves the apartment of roomID off the request path.
func (s *serviceImpl) invalidateForRoom(ctx context.Context, id, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		room, err := s.roomRepo.Get(c, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName), roomModel.FieldID, roomModel.FieldApartmentID)
		if err != nil {
			log.Error().Err(err).Str("room_id", roomID).Msg("failed to resolve apartment for cache invalidation")
		}

		s.clearCaches(c, id, room.ApartmentID)
	}()
}

func (s *serviceImpl) clearCaches(ctx context.Context, id, apartmentID string) {
	keys := []string{shared.BuildCacheKey(cacheGetConnection, id)}
	if apartmentID != constant.Empty {
		keys = append(keys, shared.BuildCacheKey(constant.CacheTourPrefix, apartmentID))
	}

	for _, key := range keys {
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete room connection cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllConnection)
	shared.InvalidateCaches(ctx, s.cache, cacheCountConnection)
}
