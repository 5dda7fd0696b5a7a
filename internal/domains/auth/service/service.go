package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"

	"luxhome/config"
	"luxhome/infras/jwt"
	"luxhome/infras/otel"
	"luxhome/internal/domains/auth/model/dto"
	userModel "luxhome/internal/domains/user/model"
	userRepo "luxhome/internal/domains/user/repository"
	"luxhome/shared"
	"luxhome/shared/constant"
	"luxhome/shared/failure"
	"luxhome/shared/password"
	"luxhome/shared/timezone"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Auth issues and rotates the bearer tokens of back-office users.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

var errBadCredentials = failure.Unauthorized("invalid email or password")

type serviceImpl struct {
	users  userRepo.User
	cfg    *config.Config
	otel   otel.Otel
	tokens jwt.JWT
}

func New(users userRepo.User, cfg *config.Config, otel otel.Otel, tokens jwt.JWT) Auth {
	return &serviceImpl{
		users:  users,
		cfg:    cfg,
		otel:   otel,
		tokens: tokens,
	}
}

func (s *serviceImpl) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+"."+op)
}

// authenticate answers the same for an unknown email and a wrong password.
func (s *serviceImpl) authenticate(ctx context.Context, email, plain string) (userModel.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return user, errors.Wrap(err, "failed to get user")
	}

	if user.ID == constant.Empty || password.Verify(plain, user.Password) != nil {
		log.Warn().Str("email", email).Msg("rejected login attempt")

		return userModel.User{}, errBadCredentials
	}

	if !user.Active {
		return userModel.User{}, failure.Forbidden("user account is deactivated")
	}

	return user, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.scope(ctx, "Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return res, err
	}

	pair, err := s.tokens.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to generate tokens")

		return res, errors.Wrap(err, "failed to generate tokens")
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, timezone.Now()); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(pair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.scope(ctx, "RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pair, err := s.tokens.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(pair)

	return res, nil
}

// ChangePassword replaces the password of the caller after checking the
// current one.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.scope(ctx, "ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.users.Get(ctx, filter)
	switch {
	case err != nil:
		return errors.Wrap(err, "failed to get user")
	case user.ID == constant.Empty:
		return failure.NotFound("user not found")
	case password.Verify(req.CurrentPassword, user.Password) != nil:
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	fields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, userID)
	if err = s.users.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to update password")

		return errors.Wrap(err, "failed to update password")
	}

	return nil
}
