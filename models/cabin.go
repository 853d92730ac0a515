package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Cabin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;uniqueIndex" json:"name"`

	// PricePerNight and MaxGuests are business facts: bookings snapshot the
	// price at creation time and never recompute from the current value.
	PricePerNight decimal.Decimal `gorm:"type:decimal(10,2)" json:"pricePerNight"`
	MaxGuests     int             `gorm:"column:max_guests" json:"maxGuests"`

	IsActive bool `gorm:"column:is_active;default:true" json:"isActive"`

	// Amenity names stored as a JSON array, loaded together with the cabin
	// row. No on-demand queries behind property access.
	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
