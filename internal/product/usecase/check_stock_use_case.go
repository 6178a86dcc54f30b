package usecase

import (
	"context"

	"storefront/internal/dto"
)

type CheckStockUseCase struct {
	repo ProductRepository
}

func NewCheckStockUseCase(repo ProductRepository) *CheckStockUseCase {
	return &CheckStockUseCase{repo: repo}
}

func (uc *CheckStockUseCase) CheckStock(ctx context.Context, productID string) (*dto.CheckStockOutput, error) {
	product, err := uc.repo.Find(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &dto.CheckStockOutput{
		ProductID: product.ID.String(),
		Stock:     product.Stock,
	}, nil
}
