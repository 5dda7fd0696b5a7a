package model

import "luxhome/shared/model"

const (
	TableName  = "tour_hotspots"
	EntityName = "tour_hotspot"

	FieldID              = "id"
	FieldRoomID          = "room_id"
	FieldHotspotType     = "hotspot_type"
	FieldPositionX       = "position_x"
	FieldPositionY       = "position_y"
	FieldConnectedRoomID = "connected_room_id"
	FieldIsActive        = "is_active"
	FieldCreatedAt       = "created_at"
)

// Hotspot positions are normalized to the panorama, 0.0 to 1.0.
const (
	MinPosition = 0.0
	MaxPosition = 1.0
)

const (
	TypeNavigation = "navigation"
	TypeInfo       = "info"
	TypeFeature    = "feature"
	TypeAmenity    = "amenity"

	DefaultType = TypeInfo
)

type Hotspot struct {
	ID              string  `db:"id"`
	RoomID          string  `db:"room_id"`
	HotspotType     string  `db:"hotspot_type"`
	PositionX       float64 `db:"position_x"`
	PositionY       float64 `db:"position_y"`
	Title           string  `db:"title"`
	Description     string  `db:"description"`
	Icon            string  `db:"icon"`
	ConnectedRoomID *string `db:"connected_room_id"`
	IsActive        bool    `db:"is_active"`
	model.Metadata
}
