package model

import (
	"errors"

	"luxhome/shared/model"
)

const (
	TableName  = "room_connections"
	EntityName = "room_connection"

	FieldID                  = "id"
	FieldFromRoomID          = "from_room_id"
	FieldToRoomID            = "to_room_id"
	FieldHotspotX            = "hotspot_x"
	FieldHotspotY            = "hotspot_y"
	FieldIsActive            = "is_active"
	FieldCreatedAt           = "created_at"
	FieldTransitionAnimation = "transition_animation"
)

// Hotspot positions on a connection are percentages of the panorama, 0 to 100.
const (
	MinPosition = 0.0
	MaxPosition = 100.0
)

const (
	DefaultIcon                = "door"
	DefaultHotspotColor        = "#d9b38a"
	DefaultHotspotSize         = 50
	DefaultTransitionAnimation = AnimationFade
)

const (
	AnimationFade  = "fade"
	AnimationSlide = "slide"
	AnimationZoom  = "zoom"
)

var ErrDuplicateConnection = errors.New("a connection between these rooms already exists")

type Connection struct {
	ID                  string  `db:"id"`
	FromRoomID          string  `db:"from_room_id"`
	ToRoomID            string  `db:"to_room_id"`
	HotspotX            float64 `db:"hotspot_x"`
	HotspotY            float64 `db:"hotspot_y"`
	DirectionLabel      string  `db:"direction_label"`
	Icon                string  `db:"icon"`
	HotspotSize         int     `db:"hotspot_size"`
	HotspotColor        string  `db:"hotspot_color"`
	TransitionYaw       float64 `db:"transition_yaw"`
	TransitionPitch     float64 `db:"transition_pitch"`
	TransitionAnimation string  `db:"transition_animation"`
	IsActive            bool    `db:"is_active"`
	ShowOnHover         bool    `db:"show_on_hover"`
	PulseAnimation      bool    `db:"pulse_animation"`
	model.Metadata
}

// ConnectionDetail is a connection joined with the name and type of its target room.
type ConnectionDetail struct {
	Connection
	ToRoomName string `column:"name"      db:"to_room_name" table:"to_rooms"`
	ToRoomType string `column:"room_type" db:"to_room_type" table:"to_rooms"`
}

func (ConnectionDetail) GetJoinQuery() string {
	return "JOIN tour_rooms AS to_rooms ON to_rooms.id = " + TableName + "." + FieldToRoomID
}
