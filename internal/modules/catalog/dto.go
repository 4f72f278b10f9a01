package catalog

import "stayeasy/internal/pkg/money"

type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" binding:"required"`
	Rating      float64  `json:"rating" binding:"gte=0,lte=5"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Address     string   `json:"address"`
}

type UpdateHotelRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Location    *string   `json:"location"`
	Rating      *float64  `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Amenities   *[]string `json:"amenities"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Address     *string   `json:"address"`
}

type CreateRoomRequest struct {
	HotelID       int64        `json:"hotel" binding:"required"`
	RoomType      string       `json:"room_type" binding:"required"`
	PricePerNight money.Amount `json:"price_per_night" binding:"required"`
	Availability  *bool        `json:"available"`
	Capacity      int          `json:"capacity" binding:"required,gt=0"`
	Amenities     []string     `json:"amenities"`
	Image         string       `json:"image"`
}

type UpdateRoomRequest struct {
	RoomType      *string       `json:"room_type"`
	PricePerNight *money.Amount `json:"price_per_night"`
	Availability  *bool         `json:"available"`
	Capacity      *int          `json:"capacity" binding:"omitempty,gt=0"`
	Amenities     *[]string     `json:"amenities"`
	Image         *string       `json:"image"`
}
