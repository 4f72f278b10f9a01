package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayeasy/internal/domain"
)

const defaultMethod = "card"

type Service struct {
	bookings BookingRepositoryInterface
	payments PaymentRepositoryInterface
}

func NewService(bookings BookingRepositoryInterface, payments PaymentRepositoryInterface) *Service {
	return &Service{bookings: bookings, payments: payments}
}

// Confirm marks a booking as paid and completes its payment record. The
// booking is looked up scoped to the caller, and the submitted amount
// must equal the stored total; the client never sets the price.
// Confirming twice is a no-op with the same result.
func (s *Service) Confirm(ctx context.Context, userID int64, req ConfirmRequest) (*ConfirmResponse, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}

	booking, err := s.bookings.GetByIDForUser(ctx, req.BookingID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if req.Amount != booking.TotalPrice {
		return nil, fmt.Errorf("%w: expected %s", ErrAmountMismatch, booking.TotalPrice)
	}

	method := req.Method
	if method == "" {
		method = defaultMethod
	}

	if err := s.bookings.UpdateStatuses(ctx, booking.ID, domain.BookingConfirmed, domain.PaymentPaid); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Method:        method,
		TransactionID: uuid.NewString(),
		Status:        domain.PaymentStateCompleted,
	}
	if err := s.payments.Upsert(ctx, p); err != nil {
		return nil, err
	}

	return &ConfirmResponse{
		BookingID: booking.ID,
		PaymentID: p.ID,
		Amount:    p.Amount,
		Status:    string(p.Status),
	}, nil
}

// CreateIntent is a gateway stub: it hands the client a fake secret
// derived from the amount without calling any payment provider.
func (s *Service) CreateIntent(ctx context.Context, req IntentRequest) (*IntentResponse, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount cannot be negative", ErrValidation)
	}
	return &IntentResponse{
		ClientSecret: "demo_secret_" + req.Amount.String(),
		Amount:       req.Amount,
	}, nil
}
