package invoice

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/invoice/usecase"
)

type Facade struct {
	generateUseCase *usecase.GenerateInvoiceUseCase
	findUseCase     *usecase.FindInvoiceUseCase
}

func NewFacade(generate *usecase.GenerateInvoiceUseCase, find *usecase.FindInvoiceUseCase) *Facade {
	return &Facade{
		generateUseCase: generate,
		findUseCase:     find,
	}
}

func (f *Facade) Generate(ctx context.Context, input dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error) {
	return f.generateUseCase.Generate(ctx, input)
}

func (f *Facade) Find(ctx context.Context, id string) (*domain.Invoice, error) {
	return f.findUseCase.Find(ctx, id)
}
