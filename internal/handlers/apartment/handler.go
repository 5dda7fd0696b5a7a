package apartment

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/apartment/model"
	"luxhome/internal/domains/apartment/model/dto"
	"luxhome/internal/domains/apartment/service"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Apartment
	otel    otel.Otel
}

func New(service service.Apartment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the apartment routes on a router already scoped to /apartments.
func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

func (h *Handler) Router(router chi.Router) {
	router.Post("/", h.CreateApartment)
	router.Get("/", h.GetApartments)
	router.Get("/{slug}", h.GetApartmentBySlug)
	router.Patch("/{slug}", h.UpdateApartment)
	router.Delete("/{slug}", h.DeleteApartment)
}

// CreateApartment handles the creation of a new apartment.
// @Summary Create an apartment
// @Description The slug is derived from the name when omitted.
// @Tags Apartment
// @Accept json
// @Produce json
// @Param request body dto.CreateApartmentRequest true "Create Apartment Request"
// @Success 201 {object} response.Data[dto.ApartmentResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments [post]
// @Security BearerAuth
func (h *Handler) CreateApartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateApartment")
	defer scope.End()

	req := dto.CreateApartmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	apartment, err := h.service.Create(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to create apartment")

		return
	}

	scope.AddEvent("Apartment created successfully")

	response.WithJSON(w, http.StatusCreated, apartment)
}

// GetApartments lists apartments.
// @Summary Get apartments
// @Tags Apartment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "Filter by city"
// @Param country query string false "Filter by country"
// @Param is_available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[dto.GetApartmentsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments [get]
func (h *Handler) GetApartments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApartments")
	defer scope.End()

	var params gDto.QueryParams
	params.FromRequest(r, true)

	query := r.URL.Query()
	fields := map[string]any{
		model.FieldCity:    query.Get(model.FieldCity),
		model.FieldCountry: query.Get(model.FieldCountry),
	}

	if available := shared.ConvertStringToBool(query.Get(model.FieldIsAvailable)); available != nil {
		fields[model.FieldIsAvailable] = *available
	}

	apartments, err := h.service.GetAll(ctx, params, shared.FilterByFields(model.TableName, fields))
	if err != nil {
		fail(w, scope, err, "failed to get apartments")

		return
	}

	response.WithJSON(w, http.StatusOK, apartments)
}

// GetApartmentBySlug retrieves an apartment by its slug.
// @Summary Get an apartment
// @Tags Apartment
// @Produce json
// @Param slug path string true "Apartment slug"
// @Success 200 {object} response.Data[dto.ApartmentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{slug} [get]
func (h *Handler) GetApartmentBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApartmentBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	apartment, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to get apartment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, apartment)
}

// UpdateApartment applies a partial update to an apartment.
// @Summary Update an apartment
// @Tags Apartment
// @Accept json
// @Produce json
// @Param slug path string true "Apartment slug"
// @Param request body dto.UpdateApartmentRequest true "Update Apartment Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{slug} [patch]
// @Security BearerAuth
func (h *Handler) UpdateApartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateApartment")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	req := dto.UpdateApartmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		fail(w, scope, err, "invalid request body")

		return
	}

	if err := h.service.Update(ctx, req, slug); err != nil {
		fail(w, scope, err, "failed to update apartment")

		return
	}

	response.WithMessage(w, http.StatusOK, "Apartment updated successfully")
}

// DeleteApartment deletes an apartment and its tour.
// @Summary Delete an apartment
// @Tags Apartment
// @Produce json
// @Param slug path string true "Apartment slug"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/apartments/{slug} [delete]
// @Security BearerAuth
func (h *Handler) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteApartment")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	if err := h.service.Delete(ctx, slug); err != nil {
		fail(w, scope, err, "failed to delete apartment")

		return
	}

	scope.AddEvent("Apartment deleted successfully")

	response.WithMessage(w, http.StatusOK, "Apartment deleted successfully")
}
