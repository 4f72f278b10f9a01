package domain

import (
	"time"

	"stayeasy/internal/pkg/money"
)

type Room struct {
	ID            int64        `json:"id"`
	HotelID       int64        `json:"hotel" validate:"required"`
	RoomType      string       `json:"room_type" validate:"required"`
	PricePerNight money.Amount `json:"price_per_night" validate:"gte=0"`
	Availability  bool         `json:"available"`
	Capacity      int          `json:"capacity" validate:"gt=0"`
	Amenities     []string     `json:"amenities,omitempty"`
	Image         string       `json:"image,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
