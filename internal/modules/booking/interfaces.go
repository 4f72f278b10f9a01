package booking

import (
	"context"

	"stayeasy/internal/domain"
	"stayeasy/internal/repository"
)

type BookingRepositoryInterface interface {
	CreateWithPayment(ctx context.Context, b *domain.Booking, p *domain.Payment) error
	ListByUser(ctx context.Context, userID int64) ([]repository.BookingDetailsRow, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Booking, error)
	UpdateForUser(ctx context.Context, b *domain.Booking) error
	DeleteForUser(ctx context.Context, id, userID int64) error
}

type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
