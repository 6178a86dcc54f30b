package catalog

import (
	"context"

	"storefront/internal/catalog/usecase"
	"storefront/internal/domain"
)

// Facade exposes the store catalog, the source of sales prices.
type Facade struct {
	addUseCase  *usecase.AddUseCase
	findUseCase *usecase.FindUseCase
}

func NewFacade(add *usecase.AddUseCase, find *usecase.FindUseCase) *Facade {
	return &Facade{
		addUseCase:  add,
		findUseCase: find,
	}
}

func (f *Facade) Add(ctx context.Context, p *domain.Product) error {
	return f.addUseCase.Add(ctx, p)
}

func (f *Facade) Find(ctx context.Context, id string) (*domain.Product, error) {
	return f.findUseCase.Find(ctx, id)
}

func (f *Facade) FindAll(ctx context.Context) ([]domain.Product, error) {
	return f.findUseCase.FindAll(ctx)
}
