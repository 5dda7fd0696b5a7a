package dto

import (
	"luxhome/internal/domains/apartment/model"
	"luxhome/shared"
	gDto "luxhome/shared/dto"
	gModel "luxhome/shared/model"

	"github.com/google/uuid"
)

const (
	defaultBedrooms  = 1
	defaultBathrooms = 1
	defaultMaxGuests = 2
)

type CreateApartmentRequest struct {
	Name          string  `json:"name"            validate:"required,max=200"`
	Slug          string  `json:"slug"            validate:"omitempty,max=250"`
	Description   string  `json:"description"     validate:"required"`
	Address       string  `json:"address"         validate:"required,max=255"`
	City          string  `json:"city"            validate:"required,max=100"`
	Country       string  `json:"country"         validate:"required,max=100"`
	PostalCode    *string `json:"postal_code"     validate:"omitempty,max=20"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	Bedrooms      *int    `json:"bedrooms"        validate:"omitempty,min=0"`
	Bathrooms     *int    `json:"bathrooms"       validate:"omitempty,min=0"`
	MaxGuests     *int    `json:"max_guests"      validate:"omitempty,min=1"`
	SizeSqm       *int    `json:"size_sqm"        validate:"omitempty,min=0"`
	IsAvailable   *bool   `json:"is_available"`
}

// SlugOrDefault returns the requested slug, or one derived from the name.
func (c *CreateApartmentRequest) SlugOrDefault() string {
	if c.Slug != "" {
		return shared.Slugify(c.Slug)
	}

	return shared.Slugify(c.Name)
}

func (c *CreateApartmentRequest) ToModel(user string) model.Apartment {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Apartment{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Slug:          c.SlugOrDefault(),
		Description:   c.Description,
		Address:       c.Address,
		City:          c.City,
		Country:       c.Country,
		PostalCode:    c.PostalCode,
		PricePerNight: c.PricePerNight,
		Bedrooms:      valueOr(c.Bedrooms, defaultBedrooms),
		Bathrooms:     valueOr(c.Bathrooms, defaultBathrooms),
		MaxGuests:     valueOr(c.MaxGuests, defaultMaxGuests),
		SizeSqm:       c.SizeSqm,
		IsAvailable:   available,
		Metadata: gModel.NewMetadata(user),
	}
}

func valueOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}

	return *value
}

type UpdateApartmentRequest struct {
	Name          string   `db:"name"            json:"name"            validate:"omitempty,max=200"`
	Description   string   `db:"description"     json:"description"`
	Address       string   `db:"address"         json:"address"         validate:"omitempty,max=255"`
	City          string   `db:"city"            json:"city"            validate:"omitempty,max=100"`
	Country       string   `db:"country"         json:"country"         validate:"omitempty,max=100"`
	PostalCode    *string  `db:"postal_code"     json:"postal_code"     validate:"omitempty,max=20"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gt=0"`
	Bedrooms      *int     `db:"bedrooms"        json:"bedrooms"        validate:"omitempty,min=0"`
	Bathrooms     *int     `db:"bathrooms"       json:"bathrooms"       validate:"omitempty,min=0"`
	MaxGuests     *int     `db:"max_guests"      json:"max_guests"      validate:"omitempty,min=1"`
	SizeSqm       *int     `db:"size_sqm"        json:"size_sqm"        validate:"omitempty,min=0"`
	IsAvailable   *bool    `db:"is_available"    json:"is_available"`
}

type ApartmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PostalCode    *string `json:"postal_code"`
	PricePerNight float64 `json:"price_per_night"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	MaxGuests     int     `json:"max_guests"`
	SizeSqm       *int    `json:"size_sqm"`
	IsAvailable   bool    `json:"is_available"`
	gDto.Metadata
}

func (r *ApartmentResponse) FromModel(model model.Apartment) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Address = model.Address
	r.City = model.City
	r.Country = model.Country
	r.PostalCode = model.PostalCode
	r.PricePerNight = model.PricePerNight
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.MaxGuests = model.MaxGuests
	r.SizeSqm = model.SizeSqm
	r.IsAvailable = model.IsAvailable
	r.Metadata.FromModel(model.Metadata)
}

type GetApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetApartmentsResponse) FromModels(models []model.Apartment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Apartments = make([]ApartmentResponse, len(models))
	for i, mod := range models {
		r.Apartments[i].FromModel(mod)
	}
}
