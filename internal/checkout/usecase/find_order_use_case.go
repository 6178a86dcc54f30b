package usecase

import (
	"context"

	"storefront/internal/domain"
)

type FindOrderUseCase struct {
	gateway OrderGateway
}

func NewFindOrderUseCase(gateway OrderGateway) *FindOrderUseCase {
	return &FindOrderUseCase{gateway: gateway}
}

func (uc *FindOrderUseCase) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.gateway.FindOrder(ctx, id)
}
