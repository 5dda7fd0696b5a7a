package dto

import (
	"luxhome/internal/domains/connection/model"
	"luxhome/shared"
	gDto "luxhome/shared/dto"
	gModel "luxhome/shared/model"

	"github.com/google/uuid"
)

type CreateConnectionRequest struct {
	FromRoomID          string   `json:"from_room_id"         validate:"required,uuid"`
	ToRoomID            string   `json:"to_room_id"           validate:"required,uuid"`
	HotspotX            *float64 `json:"hotspot_x"            validate:"required,gte=0,lte=100"`
	HotspotY            *float64 `json:"hotspot_y"            validate:"required,gte=0,lte=100"`
	DirectionLabel      string   `json:"direction_label"      validate:"omitempty,max=50"`
	Icon                string   `json:"icon"                 validate:"omitempty,max=50"`
	HotspotSize         int      `json:"hotspot_size"         validate:"omitempty,min=1"`
	HotspotColor        string   `json:"hotspot_color"        validate:"omitempty,hexcolor,max=7"`
	TransitionYaw       float64  `json:"transition_yaw"`
	TransitionPitch     float64  `json:"transition_pitch"`
	TransitionAnimation string   `json:"transition_animation" validate:"omitempty,oneof=fade slide zoom"`
	IsActive            *bool    `json:"is_active"`
	ShowOnHover         *bool    `json:"show_on_hover"`
	PulseAnimation      *bool    `json:"pulse_animation"`
}

// ToModel fills unset styling with the connection defaults.
func (c *CreateConnectionRequest) ToModel(user string) model.Connection {
	conn := model.Connection{
		ID:                  uuid.NewString(),
		FromRoomID:          c.FromRoomID,
		ToRoomID:            c.ToRoomID,
		DirectionLabel:      c.DirectionLabel,
		Icon:                c.Icon,
		HotspotSize:         c.HotspotSize,
		HotspotColor:        c.HotspotColor,
		TransitionYaw:       c.TransitionYaw,
		TransitionPitch:     c.TransitionPitch,
		TransitionAnimation: c.TransitionAnimation,
		IsActive:            boolOr(c.IsActive, true),
		ShowOnHover:         boolOr(c.ShowOnHover, true),
		PulseAnimation:      boolOr(c.PulseAnimation, true),
		Metadata: gModel.NewMetadata(user),
	}

	if c.HotspotX != nil {
		conn.HotspotX = *c.HotspotX
	}

	if c.HotspotY != nil {
		conn.HotspotY = *c.HotspotY
	}

	if conn.Icon == "" {
		conn.Icon = model.DefaultIcon
	}

	if conn.HotspotSize == 0 {
		conn.HotspotSize = model.DefaultHotspotSize
	}

	if conn.HotspotColor == "" {
		conn.HotspotColor = model.DefaultHotspotColor
	}

	if conn.TransitionAnimation == "" {
		conn.TransitionAnimation = model.DefaultTransitionAnimation
	}

	return conn
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}

type UpdateConnectionRequest struct {
	ToRoomID            string   `db:"to_room_id"           json:"to_room_id"           validate:"omitempty,uuid"`
	HotspotX            *float64 `db:"hotspot_x"            json:"hotspot_x"            validate:"omitempty,gte=0,lte=100"`
	HotspotY            *float64 `db:"hotspot_y"            json:"hotspot_y"            validate:"omitempty,gte=0,lte=100"`
	DirectionLabel      *string  `db:"direction_label"      json:"direction_label"      validate:"omitempty,max=50"`
	Icon                string   `db:"icon"                 json:"icon"                 validate:"omitempty,max=50"`
	HotspotSize         *int     `db:"hotspot_size"         json:"hotspot_size"         validate:"omitempty,min=1"`
	HotspotColor        string   `db:"hotspot_color"        json:"hotspot_color"        validate:"omitempty,hexcolor,max=7"`
	TransitionYaw       *float64 `db:"transition_yaw"       json:"transition_yaw"`
	TransitionPitch     *float64 `db:"transition_pitch"     json:"transition_pitch"`
	TransitionAnimation string   `db:"transition_animation" json:"transition_animation" validate:"omitempty,oneof=fade slide zoom"`
	IsActive            *bool    `db:"is_active"            json:"is_active"`
	ShowOnHover         *bool    `db:"show_on_hover"        json:"show_on_hover"`
	PulseAnimation      *bool    `db:"pulse_animation"      json:"pulse_animation"`
}

type ConnectionResponse struct {
	ID                  string  `json:"id"`
	FromRoom            string  `json:"from_room"`
	ToRoom              string  `json:"to_room"`
	HotspotX            float64 `json:"hotspot_x"`
	HotspotY            float64 `json:"hotspot_y"`
	DirectionLabel      string  `json:"direction_label"`
	Icon                string  `json:"icon"`
	HotspotSize         int     `json:"hotspot_size"`
	HotspotColor        string  `json:"hotspot_color"`
	TransitionYaw       float64 `json:"transition_yaw"`
	TransitionPitch     float64 `json:"transition_pitch"`
	TransitionAnimation string  `json:"transition_animation"`
	IsActive            bool    `json:"is_active"`
	ShowOnHover         bool    `json:"show_on_hover"`
	PulseAnimation      bool    `json:"pulse_animation"`
	gDto.Metadata
}

func (r *ConnectionResponse) FromModel(model model.Connection) {
	r.ID = model.ID
	r.FromRoom = model.FromRoomID
	r.ToRoom = model.ToRoomID
	r.HotspotX = model.HotspotX
	r.HotspotY = model.HotspotY
	r.DirectionLabel = model.DirectionLabel
	r.Icon = model.Icon
	r.HotspotSize = model.HotspotSize
	r.HotspotColor = model.HotspotColor
	r.TransitionYaw = model.TransitionYaw
	r.TransitionPitch = model.TransitionPitch
	r.TransitionAnimation = model.TransitionAnimation
	r.IsActive = model.IsActive
	r.ShowOnHover = model.ShowOnHover
	r.PulseAnimation = model.PulseAnimation
	r.Metadata.FromModel(model.Metadata)
}

type GetConnectionsResponse struct {
	Connections []ConnectionResponse `json:"connections"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetConnectionsResponse) FromModels(models []model.Connection, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Connections = make([]ConnectionResponse, len(models))
	for i, mod := range models {
		r.Connections[i].FromModel(mod)
	}
}
