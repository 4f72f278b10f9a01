package booking

import (
	"time"

	"stayeasy/internal/pkg/money"
	"stayeasy/internal/repository"
)

// Check-in and check-out arrive as plain dates.
const dateLayout = "2006-01-02"

type CreateBookingRequest struct {
	RoomID   int64  `json:"room" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
	Guests   int    `json:"guests"`
}

type UpdateBookingRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Guests   *int    `json:"guests" binding:"omitempty,gte=1"`
}

// BookingDetails is the list shape: the booking plus the hotel and room
// columns the client renders alongside it.
type BookingDetails struct {
	ID            int64        `json:"id"`
	RoomID        int64        `json:"room"`
	HotelName     string       `json:"hotel_name"`
	HotelLocation string       `json:"hotel_location"`
	HotelImage    string       `json:"hotel_image,omitempty"`
	RoomType      string       `json:"room_type"`
	CheckIn       string       `json:"check_in"`
	CheckOut      string       `json:"check_out"`
	Guests        int          `json:"guests"`
	TotalPrice    money.Amount `json:"total_price"`
	Status        string       `json:"status"`
	PaymentStatus string       `json:"payment_status"`
	CreatedAt     time.Time    `json:"created_at"`
}

func detailsFromRow(row repository.BookingDetailsRow) BookingDetails {
	return BookingDetails{
		ID:            row.ID,
		RoomID:        row.RoomID,
		HotelName:     row.HotelName,
		HotelLocation: row.HotelLocation,
		HotelImage:    row.HotelImage,
		RoomType:      row.RoomType,
		CheckIn:       row.CheckIn.Format(dateLayout),
		CheckOut:      row.CheckOut.Format(dateLayout),
		Guests:        row.Guests,
		TotalPrice:    row.TotalPrice,
		Status:        row.Status,
		PaymentStatus: row.PaymentStatus,
		CreatedAt:     row.CreatedAt,
	}
}
