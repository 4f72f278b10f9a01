package payment

import "stayeasy/internal/pkg/money"

type ConfirmRequest struct {
	BookingID int64        `json:"booking_id" binding:"required"`
	Amount    money.Amount `json:"amount" binding:"required"`
	Method    string       `json:"payment_method"`
}

type ConfirmResponse struct {
	BookingID int64        `json:"booking_id"`
	PaymentID int64        `json:"payment_id"`
	Amount    money.Amount `json:"amount"`
	Status    string       `json:"status"`
}

type IntentRequest struct {
	Amount money.Amount `json:"amount" binding:"required"`
}

type IntentResponse struct {
	ClientSecret string       `json:"client_secret"`
	Amount       money.Amount `json:"amount"`
}
