package checkout

import (
	"context"

	"storefront/internal/checkout/usecase"
	"storefront/internal/domain"
	"storefront/internal/dto"
)

type Facade struct {
	placeOrderUseCase *usecase.PlaceOrderUseCase
	findOrderUseCase  *usecase.FindOrderUseCase
}

func NewFacade(placeOrder *usecase.PlaceOrderUseCase, findOrder *usecase.FindOrderUseCase) *Facade {
	return &Facade{
		placeOrderUseCase: placeOrder,
		findOrderUseCase:  findOrder,
	}
}

func (f *Facade) PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
	return f.placeOrderUseCase.PlaceOrder(ctx, input)
}

func (f *Facade) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	return f.findOrderUseCase.FindOrder(ctx, id)
}
