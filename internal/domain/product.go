package domain

import (
	"strings"
	"time"

	apperrors "storefront/internal/errors"
)

// Product is the sales side view of an item as published in the store catalog.
type Product struct {
	ID          ID
	Name        string
	Description string
	SalesPrice  float64
}

func NewProduct(id string, name, description string, salesPrice float64) (*Product, error) {
	p := &Product{
		ID:          NewID(id),
		Name:        name,
		Description: description,
		SalesPrice:  salesPrice,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(p.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if p.SalesPrice < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "salesPrice", Message: "salesPrice must be non-negative"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product", details...)
	}
	return nil
}

// InventoryProduct is the administrative record holding purchase cost and stock.
type InventoryProduct struct {
	ID            ID
	Name          string
	Description   string
	PurchasePrice float64
	Stock         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewInventoryProduct(id string, name, description string, purchasePrice float64, stock int) (*InventoryProduct, error) {
	now := time.Now().UTC()
	p := &InventoryProduct{
		ID:            NewID(id),
		Name:          name,
		Description:   description,
		PurchasePrice: purchasePrice,
		Stock:         stock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	var details []apperrors.ValidationDetail
	if strings.TrimSpace(p.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if p.PurchasePrice < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "purchasePrice", Message: "purchasePrice must be non-negative"})
	}
	if p.Stock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "stock", Message: "stock must be non-negative"})
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid product", details...)
	}
	return p, nil
}

func (p InventoryProduct) InStock() bool {
	return p.Stock > 0
}
