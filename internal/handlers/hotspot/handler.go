package hotspot

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/hotspot/model"
	"luxhome/internal/domains/hotspot/model/dto"
	"luxhome/internal/domains/hotspot/service"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotspot
	otel    otel.Otel
}

func New(service service.Hotspot, otel otel.Otel) Handler {
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
	router.Route("/hotspots", func(r chi.Router) {
		r.Post("/", h.CreateHotspot)
		r.Get("/", h.GetHotspots)
		r.Get("/{id}", h.GetHotspotByID)
		r.Patch("/{id}", h.UpdateHotspot)
		r.Delete("/{id}", h.DeleteHotspot)
	})
}

// CreateHotspot handles the creation of a new hotspot.
// @Summary Create a hotspot
// @Description Positions are normalized to 0..1. A connected room must be in the same apartment.
// @Tags Hotspot
// @Accept json
// @Produce json
// @Param request body dto.CreateHotspotRequest true "Create Hotspot Request"
// @Success 201 {object} response.Data[dto.HotspotResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotspots [post]
// @Security BearerAuth
func (h *Handler) CreateHotspot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotspot")
	defer scope.End()

	req := dto.CreateHotspotRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	hotspot, err := h.service.Create(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to create hotspot")

		return
	}

	response.WithJSON(w, http.StatusCreated, hotspot)
}

// GetHotspots lists hotspots.
// @Summary Get hotspots
// @Tags Hotspot
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room"
// @Success 200 {object} response.Data[dto.GetHotspotsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotspots [get]
// @Security BearerAuth
func (h *Handler) GetHotspots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotspots")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)

	query := r.URL.Query()
	fields := map[string]any{
		model.FieldRoomID:      query.Get(model.FieldRoomID),
		model.FieldHotspotType: query.Get(model.FieldHotspotType),
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldIsActive)); active != nil {
		fields[model.FieldIsActive] = *active
	}

	hotspots, err := h.service.GetAll(ctx, params, shared.FilterByFields(model.TableName, fields))
	if err != nil {
		fail(w, scope, err, "failed to get hotspots")

		return
	}

	response.WithJSON(w, http.StatusOK, hotspots)
}

// GetHotspotByID retrieves a hotspot.
// @Summary Get a hotspot
// @Tags Hotspot
// @Produce json
// @Param id path string true "Hotspot ID"
// @Success 200 {object} response.Data[dto.HotspotResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotspots/{id} [get]
// @Security BearerAuth
func (h *Handler) GetHotspotByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotspotByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotspot, err := h.service.Get(ctx, id)
	if err != nil {
		fail(w, scope, err, "failed to get hotspot")

		return
	}

	response.WithJSON(w, http.StatusOK, hotspot)
}

// UpdateHotspot applies a partial update to a hotspot.
// @Summary Update a hotspot
// @Description Fields left empty are unchanged.
// @Tags Hotspot
// @Accept json
// @Produce json
// @Param id path string true "Hotspot ID"
// @Param request body dto.UpdateHotspotRequest true "Update Hotspot Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotspots/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateHotspot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotspot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateHotspotRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	if err := h.service.Update(ctx, req, id); err != nil {
		fail(w, scope, err, "failed to update hotspot")

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotspot updated successfully")
}

// DeleteHotspot deletes a hotspot.
// @Summary Delete a hotspot
// @Tags Hotspot
// @Produce json
// @Param id path string true "Hotspot ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotspots/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteHotspot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotspot")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		fail(w, scope, err, "failed to delete hotspot")

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotspot deleted successfully")
}
