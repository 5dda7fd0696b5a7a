package connection

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/connection/model"
	"luxhome/internal/domains/connection/model/dto"
	"luxhome/internal/domains/connection/service"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Connection
	otel    otel.Otel
}

func New(service service.Connection, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

func (h *Handler) Router(router chi.Router) {
	router.Route("/connections", func(r chi.Router) {
		r.Post("/", h.CreateConnection)
		r.Get("/", h.GetConnections)
		r.Get("/{id}", h.GetConnectionByID)
		r.Patch("/{id}", h.UpdateConnection)
		r.Delete("/{id}", h.DeleteConnection)
	})
}

// CreateConnection handles the creation of a new connection.
// @Summary Create a connection
// @Description Both rooms must belong to the same apartment. A room cannot connect to itself and each ordered pair is unique.
// @Tags Connection
// @Accept json
// @Produce json
// @Param request body dto.CreateConnectionRequest true "Create Connection Request"
// @Success 201 {object} response.Data[dto.ConnectionResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections [post]
// @Security BearerAuth
func (h *Handler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateConnection")
	defer scope.End()

	req := dto.CreateConnectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	connection, err := h.service.Create(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to create connection")

		return
	}

	response.WithJSON(w, http.StatusCreated, connection)
}

// GetConnections lists connections.
// @Summary Get connections
// @Tags Connection
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param from_room_id query string false "Filter by source room"
// @Success 200 {object} response.Data[dto.GetConnectionsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections [get]
// @Security BearerAuth
func (h *Handler) GetConnections(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnections")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)

	query := r.URL.Query()
	fields := map[string]any{
		model.FieldFromRoomID: query.Get(model.FieldFromRoomID),
		model.FieldToRoomID:   query.Get(model.FieldToRoomID),
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldIsActive)); active != nil {
		fields[model.FieldIsActive] = *active
	}

	connections, err := h.service.GetAll(ctx, params, shared.FilterByFields(model.TableName, fields))
	if err != nil {
		fail(w, scope, err, "failed to get connections")

		return
	}

	response.WithJSON(w, http.StatusOK, connections)
}

// GetConnectionByID retrieves a connection.
// @Summary Get a connection
// @Tags Connection
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Data[dto.ConnectionResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [get]
// @Security BearerAuth
func (h *Handler) GetConnectionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConnectionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	connection, err := h.service.Get(ctx, id)
	if err != nil {
		fail(w, scope, err, "failed to get connection")

		return
	}

	response.WithJSON(w, http.StatusOK, connection)
}

// UpdateConnection applies a partial update to a connection.
// @Summary Update a connection
// @Description The stored record is merged with the update and revalidated as a whole.
// @Tags Connection
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body dto.UpdateConnectionRequest true "Update Connection Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateConnectionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	if err := h.service.Update(ctx, req, id); err != nil {
		fail(w, scope, err, "failed to update connection")

		return
	}

	response.WithMessage(w, http.StatusOK, "Connection updated successfully")
}

// DeleteConnection deletes a connection.
// @Summary Delete a connection
// @Tags Connection
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/connections/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteConnection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConnection")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		fail(w, scope, err, "failed to delete connection")

		return
	}

	response.WithMessage(w, http.StatusOK, "Connection deleted successfully")
}
