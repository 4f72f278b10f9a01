package domain

import "time"

// Hotel is catalog reference data. The booking workflow only reads it;
// writes come through the catalog module.
type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location" validate:"required"`
	Rating      float64   `json:"rating" validate:"gte=0,lte=5"`
	Amenities   []string  `json:"amenities,omitempty"`
	Image       string    `json:"image,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty"`
}
