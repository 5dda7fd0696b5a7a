package editor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/internal/domains/editor/model/dto"
	editorMocks "luxhome/internal/domains/editor/service/mocks"
	"luxhome/internal/handlers/editor"
	"luxhome/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomID = "11111111-1111-1111-1111-111111111111"

func newRouter(t *testing.T) (*editorMocks.MockEditor, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := editorMocks.NewMockEditor(ctrl)

	handler := editor.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) (*httptest.ResponseRecorder, dto.Result) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	result := dto.Result{}
	_ = json.Unmarshal(rec.Body.Bytes(), &result)

	return rec, result
}

func TestSaveHotspot(t *testing.T) {
	target := "/admin/tour-rooms/" + roomID + "/save-hotspot/"

	t.Run("returns the new connection id", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			CreateConnection(gomock.Any(), roomID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req dto.SaveHotspotRequest) (string, error) {
				assert.Equal(t, 42.5, *req.X)

				return "conn-1", nil
			})

		rec, result := serve(router, http.MethodPost, target,
			`{"to_room_id":"22222222-2222-2222-2222-222222222222","x":42.5,"y":60}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dto.Result{Success: true, ConnectionID: "conn-1"}, result)
	})

	t.Run("validation error is a failed result", func(t *testing.T) {
		_, router := newRouter(t)

		rec, result := serve(router, http.MethodPost, target, `{"to_room_id":"not-a-uuid","x":120,"y":60}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("service error is a failed result", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			CreateConnection(gomock.Any(), roomID, gomock.Any()).
			Return("", failure.Validation("to_room", "rooms must belong to the same apartment"))

		rec, result := serve(router, http.MethodPost, target,
			`{"to_room_id":"33333333-3333-3333-3333-333333333333","x":1,"y":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "to_room: rooms must belong to the same apartment", result.Error)
	})

	t.Run("unexpected errors are reported the same way", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().CreateConnection(gomock.Any(), roomID, gomock.Any()).Return("", errors.New("database error"))

		rec, result := serve(router, http.MethodPost, target,
			`{"to_room_id":"33333333-3333-3333-3333-333333333333","x":1,"y":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "database error", result.Error)
	})

	t.Run("panic is recovered into a failed result", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			CreateConnection(gomock.Any(), roomID, gomock.Any()).
			DoAndReturn(func(context.Context, string, dto.SaveHotspotRequest) (string, error) {
				panic("nil map write")
			})

		rec, result := serve(router, http.MethodPost, target,
			`{"to_room_id":"33333333-3333-3333-3333-333333333333","x":1,"y":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, result.Success)
		assert.Equal(t, "nil map write", result.Error)
	})
}

func TestDeleteHotspot(t *testing.T) {
	target := "/admin/tour-rooms/" + roomID + "/delete-hotspot/conn-1/"

	t.Run("deleted", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().DeleteConnection(gomock.Any(), roomID, "conn-1").Return(nil)

		rec, result := serve(router, http.MethodDelete, target, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, result.Success)
	})

	t.Run("connection of another room", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().DeleteConnection(gomock.Any(), roomID, "conn-1").Return(failure.NotFound("connection not found"))

		rec, result := serve(router, http.MethodDelete, target, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "connection not found", result.Error)
	})
}

func TestUpdateHotspotPosition(t *testing.T) {
	target := "/admin/tour-rooms/" + roomID + "/update-hotspot-position/conn-1/"

	t.Run("moved", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			RepositionConnection(gomock.Any(), roomID, "conn-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, req dto.UpdatePositionRequest) error {
				assert.Equal(t, 12.0, *req.X)
				assert.Equal(t, 88.0, *req.Y)

				return nil
			})

		rec, result := serve(router, http.MethodPost, target, `{"x":12,"y":88}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, result.Success)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, router := newRouter(t)

		rec, result := serve(router, http.MethodPost, target, `{"x":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, result.Success)
	})
}

func TestGetEditor(t *testing.T) {
	t.Run("renders the page", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetEditor(gomock.Any(), roomID).Return(dto.EditorView{
			Room: dto.RoomView{ID: roomID, Name: "Living Room", PanoramicImageURL: "https://cdn.example.com/living.jpg"},
			Hotspots: []dto.HotspotView{
				{ID: "conn-1", ToRoomName: "Kitchen", X: 40, Y: 55},
			},
			TargetRooms: []dto.TargetRoom{{ID: "kitchen", Name: "Kitchen"}},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/tour-rooms/"+roomID+"/hotspot-editor/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "Living Room")
		assert.Contains(t, rec.Body.String(), "https://cdn.example.com/living.jpg")
		assert.Contains(t, rec.Body.String(), "Kitchen")
	})

	t.Run("unknown room", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().GetEditor(gomock.Any(), roomID).Return(dto.EditorView{}, failure.NotFound("room not found"))

		req := httptest.NewRequest(http.MethodGet, "/admin/tour-rooms/"+roomID+"/hotspot-editor/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
