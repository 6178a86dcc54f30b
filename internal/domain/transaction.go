package domain

import (
	"time"

	apperrors "storefront/internal/errors"
)

const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusDeclined = "declined"
)

type Transaction struct {
	ID        ID
	OrderID   string
	Amount    float64
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTransaction(id string, orderID string, amount float64) (*Transaction, error) {
	if amount < 0 {
		return nil, apperrors.NewValidationError("amount must be non-negative", apperrors.ValidationDetail{
			Field:   "amount",
			Message: "amount must be non-negative",
		})
	}
	now := time.Now().UTC()
	return &Transaction{
		ID:        NewID(id),
		OrderID:   orderID,
		Amount:    amount,
		Status:    TransactionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Process approves the transaction when the amount reaches the threshold and
// declines it otherwise.
func (t *Transaction) Process(approvalThreshold float64) {
	if t.Amount >= approvalThreshold {
		t.Status = TransactionStatusApproved
	} else {
		t.Status = TransactionStatusDeclined
	}
	t.UpdatedAt = time.Now().UTC()
}

func (t *Transaction) Approved() bool {
	return t.Status == TransactionStatusApproved
}
