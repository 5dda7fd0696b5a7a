package dto_test

import (
	"testing"

	"luxhome/internal/domains/connection/model"
	"luxhome/internal/domains/connection/model/dto"
	gModel "luxhome/shared/model"
	"luxhome/shared/timezone"
	"luxhome/shared/validator"

	"github.com/stretchr/testify/assert"
)

const (
	livingID  = "11111111-1111-1111-1111-111111111111"
	kitchenID = "22222222-2222-2222-2222-222222222222"
)

func ptr[T any](v T) *T {
	return &v
}

func TestCreateConnectionRequest_ToModel(t *testing.T) {
	t.Run("fills styling defaults", func(t *testing.T) {
		req := dto.CreateConnectionRequest{
			FromRoomID: livingID,
			ToRoomID:   kitchenID,
			HotspotX:   ptr(42.5),
			HotspotY:   ptr(60.0),
		}

		conn := req.ToModel("user-1")

		assert.NotEmpty(t, conn.ID)
		assert.Equal(t, 42.5, conn.HotspotX)
		assert.Equal(t, 60.0, conn.HotspotY)
		assert.Equal(t, model.DefaultIcon, conn.Icon)
		assert.Equal(t, model.DefaultHotspotSize, conn.HotspotSize)
		assert.Equal(t, model.DefaultHotspotColor, conn.HotspotColor)
		assert.Equal(t, model.AnimationFade, conn.TransitionAnimation)
		assert.True(t, conn.IsActive)
		assert.True(t, conn.ShowOnHover)
		assert.True(t, conn.PulseAnimation)
		assert.Equal(t, "user-1", conn.CreatedBy)
		assert.False(t, conn.CreatedAt.IsZero(), "expected CreatedAt to be set")
	})

	t.Run("keeps explicit styling", func(t *testing.T) {
		req := dto.CreateConnectionRequest{
			FromRoomID:          livingID,
			ToRoomID:            kitchenID,
			HotspotX:            ptr(0.0),
			HotspotY:            ptr(100.0),
			Icon:                "stairs",
			HotspotSize:         72,
			HotspotColor:        "#ffffff",
			TransitionAnimation: model.AnimationZoom,
			IsActive:            ptr(false),
			PulseAnimation:      ptr(false),
		}

		conn := req.ToModel("user-1")

		assert.Equal(t, "stairs", conn.Icon)
		assert.Equal(t, 72, conn.HotspotSize)
		assert.Equal(t, "#ffffff", conn.HotspotColor)
		assert.Equal(t, model.AnimationZoom, conn.TransitionAnimation)
		assert.False(t, conn.IsActive)
		assert.True(t, conn.ShowOnHover)
		assert.False(t, conn.PulseAnimation)
	})
}

func TestCreateConnectionRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateConnectionRequest
		wantErr bool
	}{
		{
			name: "edges of the percentage range",
			req:  dto.CreateConnectionRequest{FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: ptr(0.0), HotspotY: ptr(100.0)},
		},
		{
			name:    "x above 100",
			req:     dto.CreateConnectionRequest{FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: ptr(100.1), HotspotY: ptr(50.0)},
			wantErr: true,
		},
		{
			name:    "missing y",
			req:     dto.CreateConnectionRequest{FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: ptr(50.0)},
			wantErr: true,
		},
		{
			name: "unknown animation",
			req: dto.CreateConnectionRequest{
				FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: ptr(1.0), HotspotY: ptr(1.0), TransitionAnimation: "spin",
			},
			wantErr: true,
		},
		{
			name: "colour is not hex",
			req: dto.CreateConnectionRequest{
				FromRoomID: livingID, ToRoomID: kitchenID, HotspotX: ptr(1.0), HotspotY: ptr(1.0), HotspotColor: "gold",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConnectionResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	conn := model.Connection{
		ID:                  "conn-1",
		FromRoomID:          livingID,
		ToRoomID:            kitchenID,
		HotspotX:            40,
		HotspotY:            55,
		DirectionLabel:      "To kitchen",
		TransitionAnimation: model.AnimationSlide,
		IsActive:            true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.ConnectionResponse
	response.FromModel(conn)

	assert.Equal(t, conn.ID, response.ID)
	assert.Equal(t, livingID, response.FromRoom)
	assert.Equal(t, kitchenID, response.ToRoom)
	assert.Equal(t, 40.0, response.HotspotX)
	assert.Equal(t, "To kitchen", response.DirectionLabel)
	assert.Equal(t, model.AnimationSlide, response.TransitionAnimation)
	assert.Equal(t, "test-user", response.CreatedBy)
}

func TestGetConnectionsResponse_FromModels(t *testing.T) {
	var response dto.GetConnectionsResponse
	response.FromModels([]model.Connection{{ID: "conn-1"}, {ID: "conn-2"}}, 25, 10)

	assert.Len(t, response.Connections, 2)
	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
}
