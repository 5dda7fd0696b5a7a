package user

import (
	"net/http"
	"strconv"

	"luxhome/infras/otel"
	"luxhome/internal/domains/user/model"
	"luxhome/internal/domains/user/model/dto"
	"luxhome/internal/domains/user/service"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// fail records err on the scope and answers with its status.
func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// userID reads the {id} path parameter, rejecting anything that is not a UUID.
func userID(r *http.Request) (string, error) {
	id := chi.URLParam(r, constant.RequestParamID)

	return id, validator.ValidateVar(id, "required,uuid")
}

func (h *Handler) Router(router chi.Router) {
	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.GetUsers)
		r.Get("/{id}", h.GetUserByID)
		r.Patch("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
	})
}

// CreateUser registers a back-office account. Only a superadmin reaches it.
// @Summary Create account
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Account"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/users [post]
// @Security BearerAuth
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateUser")
	defer scope.End()

	var req dto.CreateUserRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid account payload")

		return
	}

	if err := h.service.Create(ctx, req); err != nil {
		fail(w, scope, err, "failed to create user")

		return
	}

	response.WithMessage(w, http.StatusCreated, "User created successfully")
}

// GetUsers pages through accounts
// @Summary List accounts
// @Tags User
// @Produce json
// @Param pagination query gDto.QueryParams false "Paging and sorting"
// @Param email query string false "Exact email"
// @Param role query string false "superadmin, admin or user"
// @Param active query bool false "Only active or only deactivated accounts"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 400 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)

	query := r.URL.Query()
	fields := map[string]any{
		model.FieldEmail: query.Get(model.FieldEmail),
		model.FieldRole:  query.Get(model.FieldRole),
	}

	if active, parseErr := strconv.ParseBool(query.Get(model.FieldActive)); parseErr == nil {
		fields[model.FieldActive] = active
	}

	users, err := h.service.GetAll(ctx, params, shared.FilterByFields(model.TableName, fields))
	if err != nil {
		fail(w, scope, err, "failed to get users")

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// @Summary Get account
// @Tags User
// @Produce json
// @Param id path string true "Account UUID"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [get]
// @Security BearerAuth
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserByID")
	defer scope.End()

	id, err := userID(r)
	if err != nil {
		fail(w, scope, err, "invalid user id")

		return
	}

	user, err := h.service.Get(ctx, id)
	if err != nil {
		fail(w, scope, err, "failed to get user")

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateUser changes role, name or active flag of an account.
// @Summary Update account
// @Tags User
// @Accept json
// @Produce json
// @Param id path string true "Account UUID"
// @Param request body dto.UpdateUserRequest true "Changed fields"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateUser")
	defer scope.End()

	id, err := userID(r)
	if err != nil {
		fail(w, scope, err, "invalid user id")

		return
	}

	var req dto.UpdateUserRequest
	if err = validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid account payload")

		return
	}

	if err = h.service.Update(ctx, req, id); err != nil {
		fail(w, scope, err, "failed to update user")

		return
	}

	response.WithMessage(w, http.StatusOK, "User updated successfully")
}

// DeleteUser removes an account. Callers cannot delete themselves.
// @Summary Delete account
// @Tags User
// @Produce json
// @Param id path string true "Account UUID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/users/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteUser")
	defer scope.End()

	id, err := userID(r)
	if err != nil {
		fail(w, scope, err, "invalid user id")

		return
	}

	if err = h.service.Delete(ctx, id); err != nil {
		fail(w, scope, err, "failed to delete user")

		return
	}

	response.WithMessage(w, http.StatusOK, "User deleted successfully")
}
