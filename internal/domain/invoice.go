package domain

import (
	"strings"
	"time"

	apperrors "storefront/internal/errors"
)

type InvoiceItem struct {
	ID    ID
	Name  string
	Price float64
}

type Invoice struct {
	ID        ID
	Name      string
	Document  string
	Address   Address
	Items     []InvoiceItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewInvoice(id string, name, document string, address Address, items []InvoiceItem) (*Invoice, error) {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(document) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "document", Message: "document is required"})
	}
	if len(items) == 0 {
		details = append(details, apperrors.ValidationDetail{Field: "items", Message: "items must not be empty"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid invoice", details...)
	}

	now := time.Now().UTC()
	return &Invoice{
		ID:        NewID(id),
		Name:      name,
		Document:  document,
		Address:   address,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (i *Invoice) Total() float64 {
	var total float64
	for _, item := range i.Items {
		total += item.Price
	}
	return total
}
