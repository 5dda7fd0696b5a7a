package editor

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/editor/model/dto"
	"luxhome/internal/domains/editor/service"
	"luxhome/shared/constant"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

//go:embed templates/hotspot_editor.html
var templates embed.FS

var editorPage = template.Must(template.ParseFS(templates, "templates/hotspot_editor.html"))

type Handler struct {
	service service.Editor
	otel    otel.Otel
}

func New(service service.Editor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/tour-rooms/{roomID}", func(routerGroup chi.Router) {
		routerGroup.Get("/hotspot-editor/", handler.GetEditor)
		routerGroup.Post("/save-hotspot/", guard(handler.SaveHotspot))
		routerGroup.Delete("/delete-hotspot/{id}/", guard(handler.DeleteHotspot))
		routerGroup.Post("/update-hotspot-position/{id}/", guard(handler.UpdateHotspotPosition))
	})
}

// guard turns a panic in an editor write into the usual 400 result.
func guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}

				log.Error().Err(err).Str("path", r.URL.Path).Msg("recovered panic in hotspot editor")
				fail(w, err)
			}
		}()

		next(w, r)
	}
}

func fail(w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}

	response.WithPayload(w, http.StatusBadRequest, dto.Result{Success: false, Error: err.Error()})
}

// GetEditor renders the hotspot editor page of a room.
// @Summary Hotspot editor page
// @Tags Editor
// @Produce html
// @Param roomID path string true "Room ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} response.Error
// @Router /v1/admin/tour-rooms/{roomID}/hotspot-editor/ [get]
// @Security BearerAuth
func (handler *Handler) GetEditor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEditor")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	view, err := handler.service.GetEditor(ctx, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", roomID).Msg("failed to load hotspot editor")

		response.WithError(w, err)

		return
	}

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)

	if err := editorPage.Execute(w, view); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render hotspot editor")
	}
}

// SaveHotspot creates a connection from the edited room.
// @Summary Save a connection hotspot
// @Description Coordinates are percentages of the panorama.
// @Tags Editor
// @Accept json
// @Produce json
// @Param roomID path string true "Room ID"
// @Param request body dto.SaveHotspotRequest true "Save Hotspot Request"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Router /v1/admin/tour-rooms/{roomID}/save-hotspot/ [post]
// @Security BearerAuth
func (handler *Handler) SaveHotspot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveHotspot")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)

	req := dto.SaveHotspotRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		fail(w, err)

		return
	}

	id, err := handler.service.CreateConnection(ctx, roomID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", roomID).Msg("failed to save hotspot")
		fail(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, dto.Result{Success: true, ConnectionID: id})
}

// DeleteHotspot deletes a connection of the edited room.
// @Summary Delete a connection hotspot
// @Tags Editor
// @Produce json
// @Param roomID path string true "Room ID"
// @Param id path string true "Connection ID"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Router /v1/admin/tour-rooms/{roomID}/delete-hotspot/{id}/ [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHotspot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotspot")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteConnection(ctx, roomID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", roomID).Str("connection", id).Msg("failed to delete hotspot")
		fail(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, dto.Result{Success: true})
}

// UpdateHotspotPosition moves a connection hotspot of the edited room.
// @Summary Move a connection hotspot
// @Tags Editor
// @Accept json
// @Produce json
// @Param roomID path string true "Room ID"
// @Param id path string true "Connection ID"
// @Param request body dto.UpdatePositionRequest true "New position"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Router /v1/admin/tour-rooms/{roomID}/update-hotspot-position/{id}/ [post]
// @Security BearerAuth
func (handler *Handler) UpdateHotspotPosition(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotspotPosition")
	defer scope.End()

	roomID := chi.URLParam(r, constant.RequestParamRoomID)
	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePositionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		fail(w, err)

		return
	}

	if err := handler.service.RepositionConnection(ctx, roomID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room", roomID).Str("connection", id).Msg("failed to move hotspot")
		fail(w, err)

		return
	}

	response.WithPayload(w, http.StatusOK, dto.Result{Success: true})
}
