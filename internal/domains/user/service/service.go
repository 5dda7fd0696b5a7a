package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"luxhome/config"
	"luxhome/infras/otel"
	"luxhome/internal/domains/user/model"
	"luxhome/internal/domains/user/model/dto"
	"luxhome/internal/domains/user/repository"
	"luxhome/shared"
	"luxhome/shared/cache"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/failure"
	"luxhome/shared/password"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser    = "user:get"
	cacheGetAllUser = "user:gets"
	cacheCountUser  = "user:count"
)

var errUserNotFound = failure.NotFound("user not found")

// User manages back-office accounts. Only superadmins reach it.
type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, req dto.UpdateUserRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

// remember caches value in the background. Failures only cost a later miss.
func (s *serviceImpl) remember(ctx context.Context, key string, value any) {
	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), key, value, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Str("cacheKey", key).Msg("failed to cache users")
		}
	}()
}

// forget drops the cached account and every cached listing.
func (s *serviceImpl) forget(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != "" {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
				log.Warn().Err(err).Str("id", id).Msg("failed to evict user")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllUser)
		shared.InvalidateCaches(c, s.cache, cacheCountUser)
	}()
}

func (s *serviceImpl) mustExist(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, byID(id))
	if err != nil {
		return errors.Wrap(err, "failed to check if user exists")
	}

	if !exist {
		return errUserNotFound
	}

	return nil
}

// Create registers an account with a bcrypt hashed password. The role defaults to admin.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	creator, _ := ctx.Value(constant.ContextKeyUserID).(string)

	taken, err := s.repo.Exist(ctx, gDto.And(gDto.Eq(model.TableName, model.FieldEmail, req.Email)))
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}

	if taken {
		return failure.Validation(model.FieldEmail, "email already registered")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(creator, hashed)); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to create user")

		return errors.Wrap(err, "failed to create user")
	}

	s.forget(ctx, "")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)
	if s.cache.Get(ctx, key, &res) == nil {
		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	users, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, errors.Wrap(err, "failed to list users")
	}

	res.FromModels(users, total, req.Limit)
	s.remember(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKeyWithQuery(cacheCountUser, req, filter)
	if s.cache.Get(ctx, key, &res) == nil {
		return res, nil
	}

	if res, err = s.repo.Count(ctx, filter); err != nil {
		return res, errors.Wrap(err, "failed to count users")
	}

	s.remember(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := shared.BuildCacheKey(cacheGetUser, id)
	if s.cache.Get(ctx, key, &res) == nil {
		return res, nil
	}

	user, err := s.repo.Get(ctx, byID(id))
	if err != nil {
		return res, errors.Wrap(err, "failed to get user")
	}

	if user.ID == constant.Empty {
		return res, errUserNotFound
	}

	res.FromModel(user)
	s.remember(ctx, key, res)

	return res, nil
}

// Update changes role, name or the active flag. Absent fields are left alone.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateUserRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateUserRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	if err = s.mustExist(ctx, id); err != nil {
		return err
	}

	editor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, editor), byID(id)); err != nil {
		return errors.Wrap(err, "failed to update user")
	}

	s.forget(ctx, id)

	return nil
}

// Delete removes an account. Callers cannot delete themselves.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if caller, _ := ctx.Value(constant.ContextKeyUserID).(string); caller == id {
		return failure.BadRequestFromString("cannot delete your own account")
	}

	if err = s.mustExist(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, byID(id)); err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	s.forget(ctx, id)

	return nil
}
