package model

import (
	"cmp"
	"errors"
	"slices"

	connectionModel "luxhome/internal/domains/connection/model"
	hotspotModel "luxhome/internal/domains/hotspot/model"
	roomModel "luxhome/internal/domains/room/model"
	"luxhome/shared"
)

const (
	MsgApartmentNotFound = "Apartment not found."
	MsgNoTour            = "No virtual tour available for this apartment."
)

var ErrEmptyTour = errors.New(MsgNoTour)

// Tour is the read-only payload served to tour viewers. It is never persisted.
type Tour struct {
	ApartmentID   string `json:"apartment_id"`
	ApartmentName string `json:"apartment_name"`
	Rooms         []Room `json:"rooms"`
	StartingRoom  Room   `json:"starting_room"`
	RoomCount     int    `json:"room_count"`
}

type Room struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	RoomType          string       `json:"room_type"`
	PanoramicImage    string       `json:"panoramic_image"`
	PanoramicImageURL *string      `json:"panoramic_image_url"`
	Description       string       `json:"description"`
	Order             int          `json:"order"`
	IsStartingRoom    bool         `json:"is_starting_room"`
	InitialYaw        float64      `json:"initial_yaw"`
	InitialPitch      float64      `json:"initial_pitch"`
	ConnectionsFrom   []Connection `json:"connections_from"`
	Hotspots          []Hotspot    `json:"hotspots"`
}

type Connection struct {
	ID                  string  `json:"id"`
	ToRoom              string  `json:"to_room"`
	ToRoomName          string  `json:"to_room_name"`
	ToRoomType          string  `json:"to_room_type"`
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
}

type Hotspot struct {
	ID            string  `json:"id"`
	HotspotType   string  `json:"hotspot_type"`
	PositionX     float64 `json:"position_x"`
	PositionY     float64 `json:"position_y"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Icon          string  `json:"icon"`
	ConnectedRoom *string `json:"connected_room"`
	IsActive      bool    `json:"is_active"`
}

// Assemble builds the tour of one apartment. Rooms are ordered by (order, created_at);
// the starting room is the flagged one, or the first room when none is flagged.
func Assemble(
	apartmentID, apartmentName string,
	rooms []roomModel.Room,
	connections []connectionModel.ConnectionDetail,
	hotspots []hotspotModel.Hotspot,
	baseURL string,
) (Tour, error) {
	if len(rooms) == 0 {
		return Tour{}, ErrEmptyTour
	}

	ordered := slices.Clone(rooms)
	slices.SortStableFunc(ordered, func(a, b roomModel.Room) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	outgoing := make(map[string][]Connection, len(ordered))
	for _, conn := range connections {
		outgoing[conn.FromRoomID] = append(outgoing[conn.FromRoomID], connectionFromModel(conn))
	}

	markers := make(map[string][]Hotspot, len(ordered))
	for _, hotspot := range hotspots {
		markers[hotspot.RoomID] = append(markers[hotspot.RoomID], hotspotFromModel(hotspot))
	}

	tour := Tour{
		ApartmentID:   apartmentID,
		ApartmentName: apartmentName,
		Rooms:         make([]Room, len(ordered)),
		RoomCount:     len(ordered),
	}

	starting := -1

	for i, room := range ordered {
		tour.Rooms[i] = roomFromModel(room, baseURL)

		if conns, ok := outgoing[room.ID]; ok {
			tour.Rooms[i].ConnectionsFrom = conns
		}

		if spots, ok := markers[room.ID]; ok {
			tour.Rooms[i].Hotspots = spots
		}

		if starting < 0 && room.IsStartingRoom {
			starting = i
		}
	}

	if starting < 0 {
		starting = 0
	}

	tour.StartingRoom = tour.Rooms[starting]

	return tour, nil
}

func roomFromModel(room roomModel.Room, baseURL string) Room {
	res := Room{
		ID:              room.ID,
		Name:            room.Name,
		RoomType:        room.RoomType,
		PanoramicImage:  room.PanoramicImage,
		Description:     room.Description,
		Order:           room.Order,
		IsStartingRoom:  room.IsStartingRoom,
		InitialYaw:      room.InitialYaw,
		InitialPitch:    room.InitialPitch,
		ConnectionsFrom: []Connection{},
		Hotspots:        []Hotspot{},
	}

	if room.PanoramicImage != "" {
		url := shared.AbsoluteURL(baseURL, room.PanoramicImage)
		res.PanoramicImageURL = &url
	}

	return res
}

func connectionFromModel(conn connectionModel.ConnectionDetail) Connection {
	return Connection{
		ID:                  conn.ID,
		ToRoom:              conn.ToRoomID,
		ToRoomName:          conn.ToRoomName,
		ToRoomType:          conn.ToRoomType,
		HotspotX:            conn.HotspotX,
		HotspotY:            conn.HotspotY,
		DirectionLabel:      conn.DirectionLabel,
		Icon:                conn.Icon,
		HotspotSize:         conn.HotspotSize,
		HotspotColor:        conn.HotspotColor,
		TransitionYaw:       conn.TransitionYaw,
		TransitionPitch:     conn.TransitionPitch,
		TransitionAnimation: conn.TransitionAnimation,
		IsActive:            conn.IsActive,
		ShowOnHover:         conn.ShowOnHover,
		PulseAnimation:      conn.PulseAnimation,
	}
}

func hotspotFromModel(hotspot hotspotModel.Hotspot) Hotspot {
	return Hotspot{
		ID:            hotspot.ID,
		HotspotType:   hotspot.HotspotType,
		PositionX:     hotspot.PositionX,
		PositionY:     hotspot.PositionY,
		Title:         hotspot.Title,
		Description:   hotspot.Description,
		Icon:          hotspot.Icon,
		ConnectedRoom: hotspot.ConnectedRoomID,
		IsActive:      hotspot.IsActive,
	}
}
