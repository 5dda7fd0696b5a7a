package model

import "luxhome/shared/model"

const (
	TableName  = "tour_rooms"
	EntityName = "tour_room"

	// StorageDirectory is the object storage prefix for panoramas.
	StorageDirectory = "virtual_tour/panoramas"

	FieldID             = "id"
	FieldApartmentID    = "apartment_id"
	FieldName           = "name"
	FieldRoomType       = "room_type"
	FieldPanoramicImage = "panoramic_image"
	FieldDescription    = "description"
	FieldOrder          = "sort_order"
	FieldIsStartingRoom = "is_starting_room"
	FieldInitialYaw     = "initial_yaw"
	FieldInitialPitch   = "initial_pitch"
	FieldCreatedAt      = "created_at"
)

// TourOrder lists rooms the way tours traverse them.
const TourOrder = TableName + "." + FieldOrder + " ASC, " + TableName + "." + FieldCreatedAt + " ASC"

const (
	TypeLivingRoom = "living_room"
	TypeBedroom    = "bedroom"
	TypeKitchen    = "kitchen"
	TypeBathroom   = "bathroom"
	TypeDiningRoom = "dining_room"
	TypeBalcony    = "balcony"
	TypeTerrace    = "terrace"
	TypeOffice     = "office"
	TypeHallway    = "hallway"
	TypeEntrance   = "entrance"
	TypeOther      = "other"
)

type Room struct {
	ID             string  `db:"id"`
	ApartmentID    string  `db:"apartment_id"`
	Name           string  `db:"name"`
	RoomType       string  `db:"room_type"`
	PanoramicImage string  `db:"panoramic_image"`
	Description    string  `db:"description"`
	Order          int     `db:"sort_order"`
	IsStartingRoom bool    `db:"is_starting_room"`
	InitialYaw     float64 `db:"initial_yaw"`
	InitialPitch   float64 `db:"initial_pitch"`
	model.Metadata
}
