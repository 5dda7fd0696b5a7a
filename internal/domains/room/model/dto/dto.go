package dto

import (
	"mime/multipart"

	"luxhome/internal/domains/room/model"
	"luxhome/shared"
	gDto "luxhome/shared/dto"
	gModel "luxhome/shared/model"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	ApartmentID    string                `json:"apartment_id"     validate:"required,uuid"`
	Name           string                `json:"name"             validate:"required,max=100"`
	RoomType       string                `json:"room_type"        validate:"required,oneof=living_room bedroom kitchen bathroom dining_room balcony terrace office hallway entrance other"`
	PanoramicImage *multipart.FileHeader `json:"panoramic_image"  validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=10"`
	PanoramicFile  multipart.File        `json:"-"`
	Description    string                `json:"description"`
	Order          int                   `json:"order"            validate:"min=0,max=32767"`
	IsStartingRoom bool                  `json:"is_starting_room"`
	InitialYaw     float64               `json:"initial_yaw"      validate:"gte=0,lt=360"`
	InitialPitch   float64               `json:"initial_pitch"    validate:"gte=-90,lte=90"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	return model.Room{
		ID:             uuid.NewString(),
		ApartmentID:    c.ApartmentID,
		Name:           c.Name,
		RoomType:       c.RoomType,
		PanoramicImage: imageURL,
		Description:    c.Description,
		Order:          c.Order,
		IsStartingRoom: c.IsStartingRoom,
		InitialYaw:     c.InitialYaw,
		InitialPitch:   c.InitialPitch,
		Metadata: gModel.NewMetadata(user),
	}
}

// UpdateRoomRequest carries a partial update. The apartment of a room never changes.
type UpdateRoomRequest struct {
	Name           string                `db:"name"             json:"name"             validate:"omitempty,max=100"`
	RoomType       string                `db:"room_type"        json:"room_type"        validate:"omitempty,oneof=living_room bedroom kitchen bathroom dining_room balcony terrace office hallway entrance other"`
	PanoramicImage *multipart.FileHeader `json:"panoramic_image"  validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=10"`
	PanoramicFile  multipart.File        `json:"-"`
	Description    *string               `db:"description"      json:"description"`
	Order          *int                  `db:"sort_order"       json:"order"            validate:"omitempty,min=0,max=32767"`
	IsStartingRoom *bool                 `json:"is_starting_room"`
	InitialYaw     *float64              `db:"initial_yaw"      json:"initial_yaw"      validate:"omitempty,gte=0,lt=360"`
	InitialPitch   *float64              `db:"initial_pitch"    json:"initial_pitch"    validate:"omitempty,gte=-90,lte=90"`
}

type RoomResponse struct {
	ID                string  `json:"id"`
	ApartmentID       string  `json:"apartment_id"`
	Name              string  `json:"name"`
	RoomType          string  `json:"room_type"`
	PanoramicImage    string  `json:"panoramic_image"`
	PanoramicImageURL string  `json:"panoramic_image_url"`
	Description       string  `json:"description"`
	Order             int     `json:"order"`
	IsStartingRoom    bool    `json:"is_starting_room"`
	InitialYaw        float64 `json:"initial_yaw"`
	InitialPitch      float64 `json:"initial_pitch"`
	gDto.Metadata
}

// FromModel fills the response; baseURL makes relative image paths absolute.
func (r *RoomResponse) FromModel(model model.Room, baseURL string) {
	r.ID = model.ID
	r.ApartmentID = model.ApartmentID
	r.Name = model.Name
	r.RoomType = model.RoomType
	r.PanoramicImage = model.PanoramicImage
	r.PanoramicImageURL = shared.AbsoluteURL(baseURL, model.PanoramicImage)
	r.Description = model.Description
	r.Order = model.Order
	r.IsStartingRoom = model.IsStartingRoom
	r.InitialYaw = model.InitialYaw
	r.InitialPitch = model.InitialPitch
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int, baseURL string) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod, baseURL)
	}
}
