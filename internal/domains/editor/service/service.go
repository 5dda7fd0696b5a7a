package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxhome/config"
	"luxhome/infras/otel"
	connectionModel "luxhome/internal/domains/connection/model"
	connectionRepo "luxhome/internal/domains/connection/repository"
	connectionService "luxhome/internal/domains/connection/service"
	"luxhome/internal/domains/editor/model/dto"
	roomModel "luxhome/internal/domains/room/model"
	roomRepo "luxhome/internal/domains/room/repository"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"

	"github.com/rs/zerolog/log"
)

// Editor backs the hotspot editor. Every write is scoped to connections leaving the room
// named in the request path.
type Editor interface {
	GetEditor(ctx context.Context, roomID string) (dto.EditorView, error)
	CreateConnection(ctx context.Context, roomID string, req dto.SaveHotspotRequest) (string, error)
	DeleteConnection(ctx context.Context, roomID, id string) error
	RepositionConnection(ctx context.Context, roomID, id string, req dto.UpdatePositionRequest) error
}

type serviceImpl struct {
	connection     connectionService.Connection
	connectionRepo connectionRepo.Connection
	roomRepo       roomRepo.Room
	cfg            *config.Config
	otel           otel.Otel
}

func New(
	connection connectionService.Connection,
	connectionRepo connectionRepo.Connection,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	otel otel.Otel,
) Editor {
	return &serviceImpl{
		connection:     connection,
		connectionRepo: connectionRepo,
		roomRepo:       roomRepo,
		cfg:            cfg,
		otel:           otel,
	}
}

func (s *serviceImpl) GetEditor(ctx context.Context, roomID string) (res dto.EditorView, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetEditor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour room")

		return res, fmt.Errorf("failed to get tour room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	siblings, err := s.roomRepo.GetAll(ctx, gDto.QueryParams{OrderBy: roomModel.TourOrder},
		shared.FilterByID(room.ApartmentID, roomModel.FieldApartmentID, roomModel.TableName),
		roomModel.FieldID, roomModel.FieldName, roomModel.FieldRoomType)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sibling rooms")

		return res, fmt.Errorf("failed to get sibling rooms: %w", err)
	}

	conns, err := s.connectionRepo.GetDetails(ctx,
		shared.FilterByID(room.ID, connectionModel.FieldFromRoomID, connectionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room connections")

		return res, fmt.Errorf("failed to get room connections: %w", err)
	}

	res.FromModels(room, siblings, conns, s.cfg.App.PublicBaseURL)

	return res, nil
}

func (s *serviceImpl) CreateConnection(ctx context.Context, roomID string, req dto.SaveHotspotRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateConnection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	created, err := s.connection.Create(ctx, req.ToConnectionRequest(roomID))
	if err != nil {
		return id, err //nolint:wrapcheck
	}

	return created.ID, nil
}

func (s *serviceImpl) DeleteConnection(ctx context.Context, roomID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteConnection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.connection.DeleteFromRoom(ctx, roomID, id) //nolint:wrapcheck
}

func (s *serviceImpl) RepositionConnection(ctx context.Context, roomID, id string, req dto.UpdatePositionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RepositionConnection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.X == nil || req.Y == nil {
		return failure.BadRequestFromString("x and y are required")
	}

	return s.connection.Reposition(ctx, roomID, id, *req.X, *req.Y) //nolint:wrapcheck
}
