package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"luxhome/config"
	otelMocks "luxhome/infras/otel/mocks"
	connectionRepoMocks "luxhome/internal/domains/connection/mocks"
	connectionModel "luxhome/internal/domains/connection/model"
	connectionDto "luxhome/internal/domains/connection/model/dto"
	connectionMocks "luxhome/internal/domains/connection/service/mocks"
	"luxhome/internal/domains/editor/model/dto"
	"luxhome/internal/domains/editor/service"
	roomMocks "luxhome/internal/domains/room/mocks"
	roomModel "luxhome/internal/domains/room/model"
	"luxhome/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	livingID  = "11111111-1111-1111-1111-111111111111"
	kitchenID = "22222222-2222-2222-2222-222222222222"
	bedroomID = "33333333-3333-3333-3333-333333333333"
)

type fixture struct {
	connection     *connectionMocks.MockConnection
	connectionRepo *connectionRepoMocks.MockConnection
	roomRepo       *roomMocks.MockRoom
	svc            service.Editor
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		connection:     connectionMocks.NewMockConnection(ctrl),
		connectionRepo: connectionRepoMocks.NewMockConnection(ctrl),
		roomRepo:       roomMocks.NewMockRoom(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.PublicBaseURL = "https://luxhome.example.com"

	f.svc = service.New(f.connection, f.connectionRepo, f.roomRepo, cfg, otelMocks.NewOtel())

	return f
}

func float(v float64) *float64 {
	return &v
}

func TestEditorService_GetEditor(t *testing.T) {
	living := roomModel.Room{ID: livingID, ApartmentID: "apt", Name: "Living", PanoramicImage: "/media/living.jpg"}

	t.Run("lists hotspots and the other rooms", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(living, nil)
		f.roomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any(), roomModel.FieldID, roomModel.FieldName, roomModel.FieldRoomType).
			Return([]roomModel.Room{
				{ID: livingID, Name: "Living"},
				{ID: kitchenID, Name: "Kitchen", RoomType: roomModel.TypeKitchen},
				{ID: bedroomID, Name: "Bedroom", RoomType: roomModel.TypeBedroom},
			}, nil)
		f.connectionRepo.EXPECT().
			GetDetails(gomock.Any(), gomock.Any()).
			Return([]connectionModel.ConnectionDetail{
				{
					Connection: connectionModel.Connection{ID: "conn-1", FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: 30, HotspotY: 60},
					ToRoomName: "Kitchen",
					ToRoomType: roomModel.TypeKitchen,
				},
			}, nil)

		view, err := f.svc.GetEditor(context.Background(), livingID)

		assert.NoError(t, err)
		assert.Equal(t, "https://luxhome.example.com/media/living.jpg", view.Room.PanoramicImageURL)
		assert.Len(t, view.Hotspots, 1)
		assert.Equal(t, "Kitchen", view.Hotspots[0].ToRoomName)
		assert.Equal(t, 30.0, view.Hotspots[0].X)
		assert.Equal(t, []dto.TargetRoom{
			{ID: kitchenID, Name: "Kitchen", RoomType: roomModel.TypeKitchen},
			{ID: bedroomID, Name: "Bedroom", RoomType: roomModel.TypeBedroom},
		}, view.TargetRooms)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.GetEditor(context.Background(), livingID)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestEditorService_CreateConnection(t *testing.T) {
	t.Run("creates from the edited room", func(t *testing.T) {
		f := newFixture(t)

		f.connection.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req connectionDto.CreateConnectionRequest) (connectionDto.ConnectionResponse, error) {
				assert.Equal(t, livingID, req.FromRoomID)
				assert.Equal(t, kitchenID, req.ToRoomID)
				assert.Equal(t, 45.0, *req.HotspotX)
				assert.Empty(t, req.Icon)

				return connectionDto.ConnectionResponse{ID: "conn-9"}, nil
			})

		id, err := f.svc.CreateConnection(context.Background(), livingID, dto.SaveHotspotRequest{
			ToRoomID: kitchenID,
			X:        float(45),
			Y:        float(50),
		})

		assert.NoError(t, err)
		assert.Equal(t, "conn-9", id)
	})

	t.Run("passes validation failures through", func(t *testing.T) {
		f := newFixture(t)

		f.connection.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(connectionDto.ConnectionResponse{}, failure.Validation("to_room", "rooms must belong to the same apartment"))

		_, err := f.svc.CreateConnection(context.Background(), livingID, dto.SaveHotspotRequest{ToRoomID: bedroomID, X: float(1), Y: float(1)})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestEditorService_DeleteConnection(t *testing.T) {
	f := newFixture(t)

	f.connection.EXPECT().DeleteFromRoom(gomock.Any(), livingID, "conn-1").Return(failure.NotFound("connection not found"))

	err := f.svc.DeleteConnection(context.Background(), livingID, "conn-1")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestEditorService_RepositionConnection(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdatePositionRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "moves the hotspot",
			req:  dto.UpdatePositionRequest{X: float(10), Y: float(90)},
			setupMock: func(f fixture) {
				f.connection.EXPECT().Reposition(gomock.Any(), livingID, "conn-1", 10.0, 90.0).Return(nil)
			},
		},
		{
			name:      "missing coordinate",
			req:       dto.UpdatePositionRequest{X: float(10)},
			setupMock: func(fixture) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository failure",
			req:  dto.UpdatePositionRequest{X: float(10), Y: float(10)},
			setupMock: func(f fixture) {
				f.connection.EXPECT().Reposition(gomock.Any(), livingID, "conn-1", 10.0, 10.0).Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.RepositionConnection(context.Background(), livingID, "conn-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
