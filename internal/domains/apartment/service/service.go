package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/internal/domains/apartment/model"
	"luxhome/internal/domains/apartment/model/dto"
	"luxhome/internal/domains/apartment/repository"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetApartment    = "apartment:get"
	cacheGetAllApartment = "apartment:gets"
	cacheCountApartment  = "apartment:count"
)

type Apartment interface {
	Create(ctx context.Context, req dto.CreateApartmentRequest) (dto.ApartmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetApartmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	GetBySlug(ctx context.Context, slug string) (dto.ApartmentResponse, error)
	Update(ctx context.Context, req dto.UpdateApartmentRequest, slug string) error
	Delete(ctx context.Context, slug string) error
}

type serviceImpl struct {
	repo  repository.Apartment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Apartment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Apartment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterBySlug(slug string) gDto.FilterGroup {
	return shared.FilterByID(slug, model.FieldSlug, model.TableName)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateApartmentRequest) (res dto.ApartmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	apartment := req.ToModel(user)
	if apartment.Slug == constant.Empty {
		return res, failure.Validation(model.FieldSlug, "could not derive a slug from the name")
	}

	exist, err := s.repo.Exist(ctx, filterBySlug(apartment.Slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to check apartment slug")

		return res, fmt.Errorf("failed to check apartment slug: %w", err)
	}

	if exist {
		return res, failure.Validation(model.FieldSlug, fmt.Sprintf("apartment with slug %q already exists", apartment.Slug))
	}

	if err = s.repo.Insert(ctx, apartment); err != nil {
		log.Error().Err(err).Msg("failed to create apartment")

		return res, fmt.Errorf("failed to create apartment: %w", err)
	}

	res.FromModel(apartment)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllApartment)
		shared.InvalidateCaches(c, s.cache, cacheCountApartment)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetApartmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	load := func(ctx context.Context) (page dto.GetApartmentsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return page, err
		}

		apartments, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return page, fmt.Errorf("failed to get apartments: %w", err)
		}

		page.FromModels(apartments, total, req.Limit)

		return page, nil
	}

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheGetAllApartment, req, filter), s.cfg.Cache.TTL, load)
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	load := func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count apartments")

			return 0, fmt.Errorf("failed to count apartments: %w", err)
		}

		return total, nil
	}

	return cache.Through(ctx, s.cache, shared.BuildCacheKeyWithQuery(cacheCountApartment, req, filter), s.cfg.Cache.TTL, load)
}

// GetBySlug serves the apartment detail page, cached per slug.
func (s *serviceImpl) GetBySlug(ctx context.Context, slug string) (res dto.ApartmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBySlug")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	load := func(ctx context.Context) (out dto.ApartmentResponse, err error) {
		apartment, err := s.repo.Get(ctx, filterBySlug(slug))
		switch {
		case err != nil:
			return out, fmt.Errorf("failed to get apartment: %w", err)
		case apartment.ID == constant.Empty:
			return out, failure.NotFound("apartment not found")
		}

		out.FromModel(apartment)

		return out, nil
	}

	return cache.Through(ctx, s.cache, shared.BuildCacheKey(cacheGetApartment, slug), s.cfg.Cache.TTL, load)
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateApartmentRequest, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.repo.Get(ctx, filterBySlug(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartment")

		return fmt.Errorf("failed to get apartment: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("apartment not found")
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update apartment")

		return fmt.Errorf("failed to update apartment: %w", err)
	}

	s.invalidate(ctx, current)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, slug string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.repo.Get(ctx, filterBySlug(slug))
	if err != nil {
		log.Error().Err(err).Msg("failed to get apartment")

		return fmt.Errorf("failed to get apartment: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("apartment not found")
	}

	// rooms, connections and hotspots go with it through ON DELETE CASCADE
	if err = s.repo.Delete(ctx, shared.FilterByID(current.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete apartment")

		return fmt.Errorf("failed to delete apartment: %w", err)
	}

	s.invalidate(ctx, current)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, apartment model.Apartment) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, key := range []string{
			shared.BuildCacheKey(cacheGetApartment, apartment.Slug),
			shared.BuildCacheKey(constant.CacheTourPrefix, apartment.ID),
		} {
			if err := s.cache.Delete(c, key); err != nil {
				log.Error().Err(err).Str("key", key).Msg("failed to delete apartment cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllApartment)
		shared.InvalidateCaches(c, s.cache, cacheCountApartment)
	}()
}
