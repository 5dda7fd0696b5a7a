package auth

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/auth/model/dto"
	"luxhome/internal/domains/auth/service"
	"luxhome/shared/constant"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh-token", h.RefreshToken)
		r.Post("/change-password", h.ChangePassword)
	})
}

// bind decodes and validates the JSON body into T, answering the request
// itself when that fails.
func bind[T any](w http.ResponseWriter, r *http.Request, scope otel.Scope) (T, bool) {
	var req T

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return req, false
	}

	return req, true
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

// Login exchanges credentials for a token pair
// @Summary Login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req, ok := bind[dto.LoginRequest](w, r, scope)
	if !ok {
		return
	}

	res, err := h.service.Login(ctx, req)
	if err != nil {
		fail(w, scope, err, "login failed")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken rotates a refresh token into a new pair
// @Summary Refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req, ok := bind[dto.RefreshTokenRequest](w, r, scope)
	if !ok {
		return
	}

	res, err := h.service.RefreshToken(ctx, req)
	if err != nil {
		fail(w, scope, err, "token refresh failed")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword replaces the password of the caller
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req, ok := bind[dto.ChangePasswordRequest](w, r, scope)
	if !ok {
		return
	}

	if err := h.service.ChangePassword(ctx, req); err != nil {
		fail(w, scope, err, "password change failed")

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
