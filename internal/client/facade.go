package client

import (
	"context"

	"storefront/internal/client/usecase"
	"storefront/internal/domain"
	"storefront/internal/dto"
)

// Facade is the client directory as seen by other modules.
type Facade struct {
	addUseCase  *usecase.AddClientUseCase
	findUseCase *usecase.FindClientUseCase
}

func NewFacade(add *usecase.AddClientUseCase, find *usecase.FindClientUseCase) *Facade {
	return &Facade{
		addUseCase:  add,
		findUseCase: find,
	}
}

func (f *Facade) Add(ctx context.Context, input dto.AddClientInput) (*domain.Client, error) {
	return f.addUseCase.Add(ctx, input)
}

func (f *Facade) Find(ctx context.Context, id string) (*domain.Client, error) {
	return f.findUseCase.Find(ctx, id)
}
