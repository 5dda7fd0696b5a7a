package tour

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/tour/service"
	"luxhome/shared/constant"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tour
	otel    otel.Otel
}

func New(service service.Tour, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the tour route on a router already scoped to /apartments.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/{slug}/virtual_tour/", handler.GetVirtualTour)
	router.Get("/{slug}/virtual_tour", handler.GetVirtualTour)
}

// GetVirtualTour returns the assembled tour of an apartment.
// @Summary Get the virtual tour of an apartment
// @Description Rooms in tour order with their outgoing connections and hotspots.
// @Tags Tour
// @Produce json
// @Param slug path string true "Apartment slug"
// @Success 200 {object} model.Tour
// @Failure 404 {object} response.Detail
// @Failure 500 {object} response.Detail
// @Router /v1/apartments/{slug}/virtual_tour/ [get]
func (handler *Handler) GetVirtualTour(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVirtualTour")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	tour, err := handler.service.Build(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("slug", slug).Msg("failed to build virtual tour")

		response.WithDetail(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, tour)
}
