package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"stayeasy/internal/domain"
)

type Service struct {
	bookings BookingRepositoryInterface
	rooms    RoomReader
}

func NewService(bookings BookingRepositoryInterface, rooms RoomReader) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// CreateBooking derives the total price from the room's nightly rate and
// persists the booking together with its pending payment in a single
// transaction. The price is never taken from the client.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: check_in must be YYYY-MM-DD", ErrValidation)
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: check_out must be YYYY-MM-DD", ErrValidation)
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}
	if guests < 1 {
		return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		UserID:        userID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        guests,
		TotalPrice:    room.PricePerNight.Mul(nights),
		Status:        domain.BookingPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
	p := &domain.Payment{
		Amount: b.TotalPrice,
		Status: domain.PaymentStatePending,
	}

	if err := s.bookings.CreateWithPayment(ctx, b, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, userID int64) ([]BookingDetails, error) {
	rows, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]BookingDetails, 0, len(rows))
	for _, row := range rows {
		out = append(out, detailsFromRow(row))
	}
	return out, nil
}

func (s *Service) GetBooking(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// UpdateBooking changes dates and guest count only. Price stays derived
// from the dates the booking was created with, matching the stored total.
func (s *Service) UpdateBooking(ctx context.Context, id, userID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.CheckIn != nil {
		checkIn, err := time.Parse(dateLayout, *req.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("%w: check_in must be YYYY-MM-DD", ErrValidation)
		}
		b.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := time.Parse(dateLayout, *req.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("%w: check_out must be YYYY-MM-DD", ErrValidation)
		}
		b.CheckOut = checkOut
	}
	if !b.CheckOut.After(b.CheckIn) {
		return nil, fmt.Errorf("%w: check_out must be after check_in", ErrValidation)
	}
	if req.Guests != nil {
		if *req.Guests < 1 {
			return nil, fmt.Errorf("%w: guests must be at least 1", ErrValidation)
		}
		b.Guests = *req.Guests
	}

	if err := s.bookings.UpdateForUser(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// DeleteBooking removes the booking and its payment. Scoped to the
// caller, a foreign booking id reads as not found.
func (s *Service) DeleteBooking(ctx context.Context, id, userID int64) error {
	if err := s.bookings.DeleteForUser(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
