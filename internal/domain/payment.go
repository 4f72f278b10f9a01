package domain

import (
	"time"

	"stayeasy/internal/pkg/money"
)

// PaymentState is the lifecycle of a Payment record. It is distinct from
// Booking.PaymentStatus, which tracks whether the booking itself is paid.
type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
)

// Payment is the one-to-one companion of a Booking. It is created in the
// same transaction as its booking with a pending state and an empty
// method, then updated in place on confirmation.
type Payment struct {
	ID            int64        `json:"id"`
	BookingID     int64        `json:"booking_id"`
	Amount        money.Amount `json:"amount"`
	Method        string       `json:"payment_method,omitempty"`
	TransactionID string       `json:"transaction_id,omitempty"`
	Status        PaymentState `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
