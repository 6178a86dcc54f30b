package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"

	"go.uber.org/zap"
)

type ProductRepository interface {
	Add(ctx context.Context, p *domain.InventoryProduct) error
	Find(ctx context.Context, id string) (*domain.InventoryProduct, error)
}

type AddProductUseCase struct {
	repo   ProductRepository
	logger *zap.Logger
}

func NewAddProductUseCase(repo ProductRepository, logger *zap.Logger) *AddProductUseCase {
	return &AddProductUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *AddProductUseCase) AddProduct(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error) {
	product, err := domain.NewInventoryProduct(input.ID, input.Name, input.Description, input.PurchasePrice, input.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Add(ctx, product); err != nil {
		return nil, err
	}

	uc.logger.Info("product added", zap.String("productId", product.ID.String()), zap.Int("stock", product.Stock))
	return product, nil
}
