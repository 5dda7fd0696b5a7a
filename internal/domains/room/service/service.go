package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/infras/postgres"
	"luxhome/infras/s3"
	apartmentModel "luxhome/internal/domains/apartment/model"
	apartmentRepo "luxhome/internal/domains/apartment/repository"
	"luxhome/internal/domains/room/model"
	"luxhome/internal/domains/room/model/dto"
	"luxhome/internal/domains/room/repository"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"
	"luxhome/shared/panorama"
	"luxhome/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "tour_room:get"
	cacheGetAllRoom = "tour_room:gets"
	cacheCountRoom  = "tour_room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
	SetStartingRoom(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Room
	apartmentRepo apartmentRepo.Apartment
	transactor    postgres.Transactor
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
	s3            s3.S3
	limits        panorama.Limits
}

func New(
	repo repository.Room,
	apartmentRepo apartmentRepo.Apartment,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Room {
	return &serviceImpl{
		repo:          repo,
		apartmentRepo: apartmentRepo,
		transactor:    transactor,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
		s3:            s3,
		limits:        panorama.LimitsFromConfig(cfg),
	}
}

func (s *serviceImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+op)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.scope(ctx, "Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.validatePanorama(req.PanoramicImage, req.PanoramicFile); err != nil {
		return res, err
	}

	imageURL, objectName, err := s.uploadPanorama(ctx, req.PanoramicImage, req.PanoramicFile)
	if err != nil {
		return res, err
	}

	room := req.ToModel(user, imageURL)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.lockApartment(ctx, tx, room.ApartmentID); err != nil {
			return err
		}

		if room.IsStartingRoom {
			if err := s.repo.DemoteStartingTx(ctx, tx, room.ApartmentID, constant.Empty, user); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return s.repo.InsertTx(ctx, tx, room) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create tour room")
		s.removePanorama(ctx, objectName)

		return res, fmt.Errorf("failed to create tour room: %w", err)
	}

	res.FromModel(room, s.cfg.App.PublicBaseURL)

	s.invalidate(ctx, room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.scope(ctx, "GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.OrderBy = model.TourOrder

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (page dto.GetRoomsResponse, err error) {
			total, err := s.Count(ctx, req, filter)
			if err != nil {
				return page, err
			}

			rooms, err := s.repo.GetAll(ctx, req, filter)
			if err != nil {
				return page, fmt.Errorf("failed to get tour rooms: %w", err)
			}

			page.FromModels(rooms, total, req.Limit, s.cfg.App.PublicBaseURL)

			return page, nil
		})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.scope(ctx, "Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter), s.cfg.Cache.TTL,
		func(ctx context.Context) (int, error) {
			total, err := s.repo.Count(ctx, filter)
			if err != nil {
				return 0, fmt.Errorf("failed to count tour rooms: %w", err)
			}

			return total, nil
		})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.scope(ctx, "Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Through(ctx, s.cache, shared.BuildCacheKey(cacheGetRoom, id), s.cfg.Cache.TTL,
		func(ctx context.Context) (out dto.RoomResponse, err error) {
			room, err := s.getRoom(ctx, id)
			if err != nil {
				return out, err
			}

			out.FromModel(room, s.cfg.App.PublicBaseURL)

			return out, nil
		})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.scope(ctx, "Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	var imageURL, objectName string

	if req.PanoramicImage != nil {
		if err = s.validatePanorama(req.PanoramicImage, req.PanoramicFile); err != nil {
			return err
		}

		imageURL, objectName, err = s.uploadPanorama(ctx, req.PanoramicImage, req.PanoramicFile)
		if err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if imageURL != constant.Empty {
		updatedFields[model.FieldPanoramicImage] = imageURL
	}

	if req.IsStartingRoom != nil {
		updatedFields[model.FieldIsStartingRoom] = *req.IsStartingRoom
	}

	filter := shared.FilterByID(current.ID, model.FieldID, model.TableName)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if req.IsStartingRoom != nil && *req.IsStartingRoom {
			if err := s.lockApartment(ctx, tx, current.ApartmentID); err != nil {
				return err
			}

			if err := s.repo.DemoteStartingTx(ctx, tx, current.ApartmentID, current.ID, user); err != nil {
				return err //nolint:wrapcheck
			}
		}

		return s.repo.UpdateTx(ctx, tx, updatedFields, filter) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update tour room")
		s.removePanorama(ctx, objectName)

		return fmt.Errorf("failed to update tour room: %w", err)
	}

	if imageURL != constant.Empty {
		s.removePanorama(ctx, s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, current.PanoramicImage))
	}

	s.invalidate(ctx, current)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	// connections in both directions and hotspots cascade
	if err = s.repo.Delete(ctx, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete tour room")

		return fmt.Errorf("failed to delete tour room: %w", err)
	}

	s.removePanorama(ctx, s.s3.GetObjectNameFromURL(s.cfg.External.S3.BucketName, current.PanoramicImage))
	s.invalidate(ctx, current)

	return nil
}

// SetStartingRoom demotes every other starting room of the apartment and promotes id,
// both inside one transaction holding the apartment row lock.
func (s *serviceImpl) SetStartingRoom(ctx context.Context, id string) (err error) {
	ctx, scope := s.scope(ctx, "SetStartingRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.getRoom(ctx, id)
	if err != nil {
		return err
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.lockApartment(ctx, tx, current.ApartmentID); err != nil {
			return err
		}

		if err := s.repo.DemoteStartingTx(ctx, tx, current.ApartmentID, current.ID, user); err != nil {
			return err //nolint:wrapcheck
		}

		promote := map[string]any{
			model.FieldIsStartingRoom: true,
			constant.FieldModifiedAt:  timezone.Now(),
			constant.FieldModifiedBy:  user,
		}

		return s.repo.UpdateTx(ctx, tx, promote, shared.FilterByID(current.ID, model.FieldID, model.TableName)) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to set starting room")

		return fmt.Errorf("failed to set starting room: %w", err)
	}

	s.invalidate(ctx, current)

	return nil
}

func (s *serviceImpl) getRoom(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tour room")

		return room, fmt.Errorf("failed to get tour room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("tour room not found") // nolint:wrapcheck
	}

	return room, nil
}

// lockApartment takes the apartment row lock that serializes starting-room changes.
func (s *serviceImpl) lockApartment(ctx context.Context, tx *sqlx.Tx, apartmentID string) error {
	apartment, err := s.apartmentRepo.GetTx(ctx, tx, shared.FilterByID(apartmentID, apartmentModel.FieldID, apartmentModel.TableName), apartmentModel.FieldID)
	if err != nil {
		return fmt.Errorf("failed to lock apartment: %w", err)
	}

	if apartment.ID == constant.Empty {
		return failure.Validation(model.FieldApartmentID, "apartment not found")
	}

	return nil
}

func (s *serviceImpl) validatePanorama(header *multipart.FileHeader, file multipart.File) error {
	if header == nil || file == nil {
		return failure.Validation(model.FieldPanoramicImage, "file is required")
	}

	if err := panorama.Validate(s.limits, header.Size, file); err != nil {
		return err //nolint:wrapcheck
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind panoramic image: %w", err)
	}

	return nil
}

func (s *serviceImpl) uploadPanorama(ctx context.Context, header *multipart.FileHeader, file multipart.File) (url, objectName string, err error) {
	objectName = uuid.NewString() + path.Ext(header.Filename)

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.StorageDirectory, file, header, objectName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload panoramic image")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload panoramic image: %w", err)
	}

	return url, objectName, nil
}

func (s *serviceImpl) removePanorama(ctx context.Context, objectName string) {
	if objectName == constant.Empty {
		return
	}

	if err := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.StorageDirectory, objectName); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("failed to remove panoramic image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, room model.Room) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, key := range []string{
			shared.BuildCacheKey(cacheGetRoom, room.ID),
			shared.BuildCacheKey(constant.CacheTourPrefix, room.ApartmentID),
		} {
			if err := s.cache.Delete(c, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to delete tour room cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
		shared.InvalidateCaches(c, s.cache, cacheCountRoom)
	}()
}
