package usecase

import (
	"context"

	"storefront/internal/domain"
)

type FindInvoiceUseCase struct {
	repo InvoiceRepository
}

func NewFindInvoiceUseCase(repo InvoiceRepository) *FindInvoiceUseCase {
	return &FindInvoiceUseCase{repo: repo}
}

func (uc *FindInvoiceUseCase) Find(ctx context.Context, id string) (*domain.Invoice, error) {
	return uc.repo.Find(ctx, id)
}
