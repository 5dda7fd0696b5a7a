package tour_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "luxhome/infras/otel/mocks"
	"luxhome/internal/domains/tour/model"
	tourMocks "luxhome/internal/domains/tour/service/mocks"
	"luxhome/internal/handlers/tour"
	"luxhome/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*tourMocks.MockTour, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := tourMocks.NewMockTour(ctrl)

	handler := tour.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/apartments", handler.Router)

	return svc, router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestGetVirtualTour(t *testing.T) {
	t.Run("payload is the bare tour", func(t *testing.T) {
		svc, router := newRouter(t)

		living := model.Room{ID: "living", Name: "Living", ConnectionsFrom: []model.Connection{}, Hotspots: []model.Hotspot{}}
		svc.EXPECT().Build(gomock.Any(), "sea-view-loft").Return(model.Tour{
			ApartmentID:   "apt-1",
			ApartmentName: "Sea View Loft",
			Rooms:         []model.Room{living},
			StartingRoom:  living,
			RoomCount:     1,
		}, nil)

		rec := get(router, "/apartments/sea-view-loft/virtual_tour/")

		require.Equal(t, http.StatusOK, rec.Code)

		body := map[string]any{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "apt-1", body["apartment_id"])
		assert.Equal(t, float64(1), body["room_count"])
		assert.NotContains(t, body, "data")
		assert.Contains(t, body, "starting_room")
	})

	t.Run("without trailing slash", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Build(gomock.Any(), "sea-view-loft").Return(model.Tour{ApartmentID: "apt-1"}, nil)

		rec := get(router, "/apartments/sea-view-loft/virtual_tour")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown apartment", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Build(gomock.Any(), "nowhere").Return(model.Tour{}, failure.NotFound(model.MsgApartmentNotFound))

		rec := get(router, "/apartments/nowhere/virtual_tour/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Apartment not found."}`, rec.Body.String())
	})

	t.Run("apartment without rooms", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Build(gomock.Any(), "empty").Return(model.Tour{}, failure.NotFound(model.MsgNoTour))

		rec := get(router, "/apartments/empty/virtual_tour/")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"No virtual tour available for this apartment."}`, rec.Body.String())
	})

	t.Run("internal errors are not leaked", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Build(gomock.Any(), "loft").Return(model.Tour{}, errors.New("pq: connection refused"))

		rec := get(router, "/apartments/loft/virtual_tour/")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
	})
}
