package room

import (
	"net/http"

	"luxhome/infras/otel"
	"luxhome/internal/domains/room/model"
	"luxhome/internal/domains/room/model/dto"
	"luxhome/internal/domains/room/service"
	"luxhome/shared"
	"luxhome/shared/constant"
	gDto "luxhome/shared/dto"
	"luxhome/shared/validator"
	"luxhome/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formOrder          = "order"
	formIsStartingRoom = "is_starting_room"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (h *Handler) Router(router chi.Router) {
	router.Route("/tour-rooms", func(r chi.Router) {
		r.Post("/", h.CreateRoom)
		r.Get("/", h.GetRooms)
		r.Get("/{id}", h.GetRoomByID)
		r.Patch("/{id}", h.UpdateRoom)
		r.Delete("/{id}", h.DeleteRoom)
		r.Post("/{id}/starting", h.SetStartingRoom)
	})
}

func fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)
	response.WithError(w, err)
}

// valid reports a form conversion error before running the struct rules.
func valid[T any](f *form, req *T) error {
	if f.err != nil {
		return f.err
	}

	return validator.ValidateStruct(req)
}

// CreateRoom handles the creation of a new tour room.
// @Summary Create a tour room
// @Description Create a panoramic room of an apartment. The image is uploaded to object storage.
// @Tags TourRoom
// @Accept multipart/form-data
// @Produce json
// @Param apartment_id formData string true "Apartment ID"
// @Param name formData string true "Room name"
// @Param room_type formData string true "Room type"
// @Param panoramic_image formData file true "Equirectangular panorama"
// @Param description formData string false "Description"
// @Param order formData integer false "Display order"
// @Param is_starting_room formData boolean false "Entry room of the tour"
// @Param initial_yaw formData number false "Initial yaw, 0 to 360"
// @Param initial_pitch formData number false "Initial pitch, -90 to 90"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms [post]
// @Security BearerAuth
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	f, err := parseForm(r)
	if err != nil {
		fail(w, scope, err, "failed to parse multipart form")

		return
	}
	defer f.close()

	req := dto.CreateRoomRequest{
		ApartmentID:    f.text(model.FieldApartmentID),
		Name:           f.text(model.FieldName),
		RoomType:       f.text(model.FieldRoomType),
		Description:    f.text(model.FieldDescription),
		PanoramicImage: f.header,
		PanoramicFile:  f.file,
	}
	assign(&req.Order, f.integer(formOrder))
	assign(&req.InitialYaw, f.number(model.FieldInitialYaw))
	assign(&req.InitialPitch, f.number(model.FieldInitialPitch))
	assign(&req.IsStartingRoom, f.boolean(formIsStartingRoom))

	if err := valid(f, &req); err != nil {
		fail(w, scope, err, "invalid tour room form")

		return
	}

	room, err := h.service.Create(ctx, req)
	if err != nil {
		fail(w, scope, err, "failed to create tour room")

		return
	}

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists tour rooms in tour order.
// @Summary Get tour rooms
// @Description List rooms, optionally restricted to one apartment.
// @Tags TourRoom
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param apartment_id query string false "Filter by apartment"
// @Param room_type query string false "Filter by room type"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms [get]
// @Security BearerAuth
func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()
	filterGroup := shared.FilterByFields(model.TableName, map[string]any{
		model.FieldApartmentID: query.Get(model.FieldApartmentID),
		model.FieldRoomType:    query.Get(model.FieldRoomType),
	})

	rooms, err := h.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		fail(w, scope, err, "failed to get tour rooms")

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a tour room.
// @Summary Get a tour room
// @Tags TourRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms/{id} [get]
// @Security BearerAuth
func (h *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	room, err := h.service.Get(ctx, id)
	if err != nil {
		fail(w, scope, err, "failed to get tour room")

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom applies a partial update to a tour room.
// @Summary Update a tour room
// @Description Fields left empty are unchanged. A new panorama replaces the stored one.
// @Tags TourRoom
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param name formData string false "Room name"
// @Param room_type formData string false "Room type"
// @Param panoramic_image formData file false "Equirectangular panorama"
// @Param description formData string false "Description"
// @Param order formData integer false "Display order"
// @Param is_starting_room formData boolean false "Entry room of the tour"
// @Param initial_yaw formData number false "Initial yaw, 0 to 360"
// @Param initial_pitch formData number false "Initial pitch, -90 to 90"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms/{id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	f, err := parseForm(r)
	if err != nil {
		fail(w, scope, err, "failed to parse multipart form")

		return
	}
	defer f.close()

	req := dto.UpdateRoomRequest{
		Name:           f.text(model.FieldName),
		RoomType:       f.text(model.FieldRoomType),
		Description:    f.optionalText(model.FieldDescription),
		Order:          f.integer(formOrder),
		InitialYaw:     f.number(model.FieldInitialYaw),
		InitialPitch:   f.number(model.FieldInitialPitch),
		IsStartingRoom: f.boolean(formIsStartingRoom),
		PanoramicImage: f.header,
		PanoramicFile:  f.file,
	}

	if err := valid(f, &req); err != nil {
		fail(w, scope, err, "invalid tour room form")

		return
	}

	if err := h.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		fail(w, scope, err, "failed to update tour room")

		return
	}

	response.WithMessage(w, http.StatusOK, "Tour room updated successfully")
}

// DeleteRoom deletes a tour room with its connections and hotspots.
// @Summary Delete a tour room
// @Tags TourRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(ctx, id); err != nil {
		fail(w, scope, err, "failed to delete tour room")

		return
	}

	response.WithMessage(w, http.StatusOK, "Tour room deleted successfully")
}

// SetStartingRoom makes the room the entry point of its apartment's tour.
// @Summary Set the starting room
// @Description Demotes the current starting room of the apartment and promotes this one.
// @Tags TourRoom
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-rooms/{id}/starting [post]
// @Security BearerAuth
func (h *Handler) SetStartingRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := h.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStartingRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.SetStartingRoom(ctx, id); err != nil {
		fail(w, scope, err, "failed to set starting room")

		return
	}

	response.WithMessage(w, http.StatusOK, "Starting room updated successfully")
}
