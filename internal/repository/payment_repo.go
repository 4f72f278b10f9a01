package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stayeasy/internal/domain"
	"stayeasy/internal/pkg/money"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type paymentModel struct {
	ID            int64        `gorm:"column:id;primaryKey"`
	BookingID     int64        `gorm:"column:booking_id;uniqueIndex:idx_payments_booking;not null"`
	Amount        money.Amount `gorm:"column:amount;type:decimal(10,2);not null"`
	Method        string       `gorm:"column:method;size:50"`
	TransactionID *string      `gorm:"column:transaction_id;size:100"`
	Status        string       `gorm:"column:status;size:20;default:'pending'"`
	CreatedAt     time.Time    `gorm:"column:created_at"`
	UpdatedAt     time.Time    `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	var txn string
	if m.TransactionID != nil {
		txn = *m.TransactionID
	}
	return &domain.Payment{
		ID:            m.ID,
		BookingID:     m.BookingID,
		Amount:        m.Amount,
		Method:        m.Method,
		TransactionID: txn,
		Status:        domain.PaymentState(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPaymentModel(p *domain.Payment) paymentModel {
	var txn *string
	if p.TransactionID != "" {
		v := p.TransactionID
		txn = &v
	}
	return paymentModel{
		ID:            p.ID,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		Method:        p.Method,
		TransactionID: txn,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *PaymentRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	var m paymentModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// Upsert creates the payment row for a booking, or updates it in place
// when one already exists, keyed on the unique booking_id. Confirming a
// payment twice lands on the same row both times.
func (r *PaymentRepository) Upsert(ctx context.Context, p *domain.Payment) error {
	m := toPaymentModel(p)
	m.UpdatedAt = time.Now()
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "method", "transaction_id", "status", "updated_at"}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	// On the conflict path gorm does not backfill the existing row's id,
	// so reload to report the real one.
	saved, err := r.GetByBookingID(ctx, p.BookingID)
	if err != nil {
		return err
	}
	*p = *saved
	return nil
}
