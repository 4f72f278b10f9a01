package payment

import (
	"context"

	"stayeasy/internal/domain"
)

type BookingRepositoryInterface interface {
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	UpdateStatuses(ctx context.Context, id int64, status domain.BookingStatus, payStatus domain.PaymentStatus) error
}

type PaymentRepositoryInterface interface {
	Upsert(ctx context.Context, p *domain.Payment) error
}
