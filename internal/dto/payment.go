package dto

import "time"

type ProcessPaymentInput struct {
	OrderID string
	Amount  float64
}

type ProcessPaymentOutput struct {
	TransactionID string
	OrderID       string
	Amount        float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
