package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/money"
	"stayeasy/internal/repository"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	args := m.Called(ctx, b, p)
	if b != nil {
		b.ID = 1
	}
	if p != nil {
		p.ID = 1
		p.BookingID = 1
	}
	return args.Error(0)
}

func (m *mockBookingRepo) ListByUser(ctx context.Context, userID int64) ([]repository.BookingDetailsRow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.BookingDetailsRow), args.Error(1)
}

func (m *mockBookingRepo) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateForUser(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBookingRepo) DeleteForUser(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

type mockRoomReader struct {
	mock.Mock
}

func (m *mockRoomReader) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func TestCreateBooking_DerivesTotalPrice(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	rooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{
		ID:            7,
		HotelID:       1,
		PricePerNight: money.MustParse("150.00"),
		Availability:  true,
	}, nil)
	bookings.On("CreateWithPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewService(bookings, rooms)
	b, err := svc.CreateBooking(context.Background(), 42, CreateBookingRequest{
		RoomID:   7,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-04",
		Guests:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, money.MustParse("450.00"), b.TotalPrice)
	assert.Equal(t, int64(42), b.UserID)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, domain.PaymentUnpaid, b.PaymentStatus)

	// The payment stub is created alongside, pending, with the same total.
	payment := bookings.Calls[0].Arguments.Get(2).(*domain.Payment)
	assert.Equal(t, money.MustParse("450.00"), payment.Amount)
	assert.Equal(t, domain.PaymentStatePending, payment.Status)
	assert.Empty(t, payment.Method)
}

func TestCreateBooking_GuestsDefaultToOne(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	rooms.On("GetByID", mock.Anything, int64(7)).Return(&domain.Room{
		ID:            7,
		PricePerNight: money.MustParse("199.00"),
	}, nil)
	bookings.On("CreateWithPayment", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewService(bookings, rooms)
	b, err := svc.CreateBooking(context.Background(), 42, CreateBookingRequest{
		RoomID:   7,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-02",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.Guests)
	assert.Equal(t, money.MustParse("199.00"), b.TotalPrice)
}

func TestCreateBooking_RejectsBadDates(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)
	svc := NewService(bookings, rooms)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"malformed check_in", "June 1st", "2024-06-04"},
		{"malformed check_out", "2024-06-01", "04-06-2024"},
		{"zero nights", "2024-06-01", "2024-06-01"},
		{"negative nights", "2024-06-04", "2024-06-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), 42, CreateBookingRequest{
				RoomID:   7,
				CheckIn:  tc.checkIn,
				CheckOut: tc.checkOut,
			})
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	bookings.AssertNotCalled(t, "CreateWithPayment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	rooms.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, rooms)
	_, err := svc.CreateBooking(context.Background(), 42, CreateBookingRequest{
		RoomID:   99,
		CheckIn:  "2024-06-01",
		CheckOut: "2024-06-04",
	})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetBooking_ScopedToUser(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	// A booking owned by another user reads as not found.
	bookings.On("GetByIDForUser", mock.Anything, int64(5), int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(bookings, rooms)
	_, err := svc.GetBooking(context.Background(), 5, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBooking_RejectsInvertedDates(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	checkIn, _ := time.Parse(dateLayout, "2024-06-01")
	checkOut, _ := time.Parse(dateLayout, "2024-06-04")
	bookings.On("GetByIDForUser", mock.Anything, int64(5), int64(42)).Return(&domain.Booking{
		ID:       5,
		UserID:   42,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil)

	svc := NewService(bookings, rooms)
	newOut := "2024-05-01"
	_, err := svc.UpdateBooking(context.Background(), 5, 42, UpdateBookingRequest{CheckOut: &newOut})

	assert.ErrorIs(t, err, ErrValidation)
	bookings.AssertNotCalled(t, "UpdateForUser", mock.Anything, mock.Anything)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	bookings := new(mockBookingRepo)
	rooms := new(mockRoomReader)

	bookings.On("DeleteForUser", mock.Anything, int64(5), int64(42)).Return(gorm.ErrRecordNotFound)

	svc := NewService(bookings, rooms)
	err := svc.DeleteBooking(context.Background(), 5, 42)

	assert.ErrorIs(t, err, ErrNotFound)
}
