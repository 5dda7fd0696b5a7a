package dto

import (
	connectionModel "luxhome/internal/domains/connection/model"
	connectionDto "luxhome/internal/domains/connection/model/dto"
	roomModel "luxhome/internal/domains/room/model"
	"luxhome/shared"
)

// SaveHotspotRequest places a new connection hotspot on the edited room. X and Y are
// percentages of the panorama.
type SaveHotspotRequest struct {
	ToRoomID   string   `json:"to_room_id" validate:"required,uuid"`
	X          *float64 `json:"x"          validate:"required,gte=0,lte=100"`
	Y          *float64 `json:"y"          validate:"required,gte=0,lte=100"`
	Label      string   `json:"label"      validate:"omitempty,max=50"`
	Icon       string   `json:"icon"       validate:"omitempty,max=50"`
	Color      string   `json:"color"      validate:"omitempty,hexcolor,max=7"`
	Size       int      `json:"size"       validate:"omitempty,min=1"`
	Transition string   `json:"transition" validate:"omitempty,oneof=fade slide zoom"`
}

// ToConnectionRequest leaves unset styling empty so connection defaults apply.
func (r *SaveHotspotRequest) ToConnectionRequest(roomID string) connectionDto.CreateConnectionRequest {
	return connectionDto.CreateConnectionRequest{
		FromRoomID:          roomID,
		ToRoomID:            r.ToRoomID,
		HotspotX:            r.X,
		HotspotY:            r.Y,
		DirectionLabel:      r.Label,
		Icon:                r.Icon,
		HotspotColor:        r.Color,
		HotspotSize:         r.Size,
		TransitionAnimation: r.Transition,
	}
}

type UpdatePositionRequest struct {
	X *float64 `json:"x" validate:"required,gte=0,lte=100"`
	Y *float64 `json:"y" validate:"required,gte=0,lte=100"`
}

// Result is the body of every editor write response.
type Result struct {
	Success      bool   `json:"success"`
	ConnectionID string `json:"connection_id,omitempty"`
	Error        string `json:"error,omitempty"`
}

type RoomView struct {
	ID                string  `json:"id"`
	ApartmentID       string  `json:"apartment_id"`
	Name              string  `json:"name"`
	RoomType          string  `json:"room_type"`
	PanoramicImageURL string  `json:"panoramic_image_url"`
	InitialYaw        float64 `json:"initial_yaw"`
	InitialPitch      float64 `json:"initial_pitch"`
}

func (v *RoomView) FromModel(room roomModel.Room, baseURL string) {
	v.ID = room.ID
	v.ApartmentID = room.ApartmentID
	v.Name = room.Name
	v.RoomType = room.RoomType
	v.PanoramicImageURL = shared.AbsoluteURL(baseURL, room.PanoramicImage)
	v.InitialYaw = room.InitialYaw
	v.InitialPitch = room.InitialPitch
}

type HotspotView struct {
	ID         string  `json:"id"`
	ToRoomID   string  `json:"to_room_id"`
	ToRoomName string  `json:"to_room_name"`
	ToRoomType string  `json:"to_room_type"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Label      string  `json:"label"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Size       int     `json:"size"`
	Transition string  `json:"transition"`
	IsActive   bool    `json:"is_active"`
}

func (v *HotspotView) FromModel(conn connectionModel.ConnectionDetail) {
	v.ID = conn.ID
	v.ToRoomID = conn.ToRoomID
	v.ToRoomName = conn.ToRoomName
	v.ToRoomType = conn.ToRoomType
	v.X = conn.HotspotX
	v.Y = conn.HotspotY
	v.Label = conn.DirectionLabel
	v.Icon = conn.Icon
	v.Color = conn.HotspotColor
	v.Size = conn.HotspotSize
	v.Transition = conn.TransitionAnimation
	v.IsActive = conn.IsActive
}

type TargetRoom struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	RoomType string `json:"room_type"`
}

// EditorView is everything the hotspot editor page needs for one room.
type EditorView struct {
	Room        RoomView      `json:"room"`
	Hotspots    []HotspotView `json:"hotspots"`
	TargetRooms []TargetRoom  `json:"target_rooms"`
}

// FromModels fills the view. Target rooms are the apartment's other rooms, in tour order.
func (v *EditorView) FromModels(room roomModel.Room, siblings []roomModel.Room, conns []connectionModel.ConnectionDetail, baseURL string) {
	v.Room.FromModel(room, baseURL)

	v.Hotspots = make([]HotspotView, len(conns))
	for i, conn := range conns {
		v.Hotspots[i].FromModel(conn)
	}

	v.TargetRooms = make([]TargetRoom, 0, len(siblings))
	for _, sibling := range siblings {
		if sibling.ID == room.ID {
			continue
		}

		v.TargetRooms = append(v.TargetRooms, TargetRoom{ID: sibling.ID, Name: sibling.Name, RoomType: sibling.RoomType})
	}
}
