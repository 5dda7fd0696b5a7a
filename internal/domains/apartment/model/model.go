package model

import "luxhome/shared/model"

const (
	TableName  = "apartments"
	EntityName = "apartment"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldCity        = "city"
	FieldCountry     = "country"
	FieldIsAvailable = "is_available"
)

type Apartment struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Slug          string  `db:"slug"`
	Description   string  `db:"description"`
	Address       string  `db:"address"`
	City          string  `db:"city"`
	Country       string  `db:"country"`
	PostalCode    *string `db:"postal_code"`
	PricePerNight float64 `db:"price_per_night"`
	Bedrooms      int     `db:"bedrooms"`
	Bathrooms     int     `db:"bathrooms"`
	MaxGuests     int     `db:"max_guests"`
	SizeSqm       *int    `db:"size_sqm"`
	IsAvailable   bool    `db:"is_available"`
	model.Metadata
}
