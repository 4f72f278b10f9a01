package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/money"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64        `gorm:"column:id;primaryKey"`
	UserID        int64        `gorm:"column:user_id;index;not null"`
	RoomID        int64        `gorm:"column:room_id;index;not null"`
	CheckIn       time.Time    `gorm:"column:check_in;not null"`
	CheckOut      time.Time    `gorm:"column:check_out;not null"`
	Guests        int          `gorm:"column:guests;default:1"`
	TotalPrice    money.Amount `gorm:"column:total_price;type:decimal(10,2);not null"`
	Status        string       `gorm:"column:status;size:20;default:'pending'"`
	PaymentStatus string       `gorm:"column:payment_status;size:20;default:'unpaid'"`
	CreatedAt     time.Time    `gorm:"column:created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:            m.ID,
		UserID:        m.UserID,
		RoomID:        m.RoomID,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Guests:        m.Guests,
		TotalPrice:    m.TotalPrice,
		Status:        domain.BookingStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		UserID:        b.UserID,
		RoomID:        b.RoomID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// BookingDetailsRow is a booking joined with its room and hotel, the
// shape the bookings list endpoint returns.
type BookingDetailsRow struct {
	ID            int64        `gorm:"column:id"`
	RoomID        int64        `gorm:"column:room_id"`
	HotelName     string       `gorm:"column:hotel_name"`
	HotelLocation string       `gorm:"column:hotel_location"`
	HotelImage    string       `gorm:"column:hotel_image"`
	RoomType      string       `gorm:"column:room_type"`
	CheckIn       time.Time    `gorm:"column:check_in"`
	CheckOut      time.Time    `gorm:"column:check_out"`
	Guests        int          `gorm:"column:guests"`
	TotalPrice    money.Amount `gorm:"column:total_price"`
	Status        string       `gorm:"column:status"`
	PaymentStatus string       `gorm:"column:payment_status"`
	CreatedAt     time.Time    `gorm:"column:created_at"`
}

// CreateWithPayment runs the whole booking workflow in one transaction:
// it locks the room row, flips its availability off, inserts the booking
// and inserts the companion pending payment. Either everything commits
// or nothing does, so a failed payment insert can no longer leave an
// orphaned booking behind.
func (r *BookingRepository) CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roomQ := tx
		// sqlite serializes writers on its own and rejects FOR UPDATE;
		// the row lock matters on postgres, where two concurrent
		// requests could otherwise both read availability=true.
		if tx.Dialector.Name() == "postgres" {
			roomQ = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room roomModel
		if err := roomQ.First(&room, b.RoomID).Error; err != nil {
			return err
		}

		if err := tx.Model(&roomModel{}).Where("id = ?", room.ID).
			Update("availability", false).Error; err != nil {
			return err
		}

		bm := toBookingModel(b)
		if err := tx.Create(&bm).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(bm)

		pm := toPaymentModel(p)
		pm.BookingID = bm.ID
		if err := tx.Create(&pm).Error; err != nil {
			return err
		}
		*p = *toDomainPayment(pm)
		return nil
	})
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]BookingDetailsRow, error) {
	var rows []BookingDetailsRow
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select(`bookings.id, bookings.room_id, bookings.check_in, bookings.check_out,
			bookings.guests, bookings.total_price, bookings.status,
			bookings.payment_status, bookings.created_at,
			hotels.name AS hotel_name, hotels.location AS hotel_location,
			hotels.image AS hotel_image, rooms.room_type AS room_type`).
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// GetByIDForUser only ever returns the caller's own booking; a foreign
// id reads as not found.
func (r *BookingRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateForUser(ctx context.Context, b *domain.Booking) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND user_id = ?", b.ID, b.UserID).
		Updates(map[string]any{
			"check_in":  b.CheckIn,
			"check_out": b.CheckOut,
			"guests":    b.Guests,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteForUser removes the booking together with its payment.
func (r *BookingRepository) DeleteForUser(ctx context.Context, id, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m bookingModel
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Where("booking_id = ?", id).Delete(&paymentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&bookingModel{}, id).Error
	})
}

// UpdateStatuses is the payment-confirmation write: status and
// payment_status move together.
func (r *BookingRepository) UpdateStatuses(ctx context.Context, id int64, status domain.BookingStatus, payStatus domain.PaymentStatus) error {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(status),
			"payment_status": string(payStatus),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
