package dto

import (
	"luxhome/internal/domains/hotspot/model"
	"luxhome/shared"
	gDto "luxhome/shared/dto"
	gModel "luxhome/shared/model"

	"github.com/google/uuid"
)

type CreateHotspotRequest struct {
	RoomID          string   `json:"room_id"           validate:"required,uuid"`
	HotspotType     string   `json:"hotspot_type"      validate:"omitempty,oneof=navigation info feature amenity"`
	PositionX       *float64 `json:"position_x"        validate:"required,gte=0,lte=1"`
	PositionY       *float64 `json:"position_y"        validate:"required,gte=0,lte=1"`
	Title           string   `json:"title"             validate:"required,max=100"`
	Description     string   `json:"description"`
	Icon            string   `json:"icon"              validate:"omitempty,max=50"`
	ConnectedRoomID *string  `json:"connected_room_id" validate:"omitempty,uuid"`
	IsActive        *bool    `json:"is_active"`
}

func (c *CreateHotspotRequest) ToModel(user string) model.Hotspot {
	hotspot := model.Hotspot{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		HotspotType:     c.HotspotType,
		Title:           c.Title,
		Description:     c.Description,
		Icon:            c.Icon,
		ConnectedRoomID: c.ConnectedRoomID,
		IsActive:        true,
		Metadata: gModel.NewMetadata(user),
	}

	if c.PositionX != nil {
		hotspot.PositionX = *c.PositionX
	}

	if c.PositionY != nil {
		hotspot.PositionY = *c.PositionY
	}

	if c.IsActive != nil {
		hotspot.IsActive = *c.IsActive
	}

	if hotspot.HotspotType == "" {
		hotspot.HotspotType = model.DefaultType
	}

	return hotspot
}

type UpdateHotspotRequest struct {
	HotspotType     string   `db:"hotspot_type"      json:"hotspot_type"      validate:"omitempty,oneof=navigation info feature amenity"`
	PositionX       *float64 `db:"position_x"        json:"position_x"        validate:"omitempty,gte=0,lte=1"`
	PositionY       *float64 `db:"position_y"        json:"position_y"        validate:"omitempty,gte=0,lte=1"`
	Title           string   `db:"title"             json:"title"             validate:"omitempty,max=100"`
	Description     *string  `db:"description"       json:"description"`
	Icon            *string  `db:"icon"              json:"icon"              validate:"omitempty,max=50"`
	ConnectedRoomID *string  `db:"connected_room_id" json:"connected_room_id" validate:"omitempty,uuid"`
	IsActive        *bool    `db:"is_active"         json:"is_active"`
}

type HotspotResponse struct {
	ID            string  `json:"id"`
	Room          string  `json:"room"`
	HotspotType   string  `json:"hotspot_type"`
	PositionX     float64 `json:"position_x"`
	PositionY     float64 `json:"position_y"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	ConnectedRoom *string `json:"connected_room"`
	IsActive      bool    `json:"is_active"`
	gDto.Metadata
}

func (r *HotspotResponse) FromModel(model model.Hotspot) {
	r.ID = model.ID
	r.Room = model.RoomID
	r.HotspotType = model.HotspotType
	r.PositionX = model.PositionX
	r.PositionY = model.PositionY
	r.Title = model.Title
	r.Description = model.Description
	r.Icon = model.Icon
	r.ConnectedRoom = model.ConnectedRoomID
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetHotspotsResponse struct {
	Hotspots  []HotspotResponse `json:"hotspots"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetHotspotsResponse) FromModels(models []model.Hotspot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotspots = make([]HotspotResponse, len(models))
	for i, mod := range models {
		r.Hotspots[i].FromModel(mod)
	}
}
