package product

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"
	"storefront/internal/product/usecase"
)

// Facade is the inventory administration entry point used by checkout.
type Facade struct {
	addUseCase        *usecase.AddProductUseCase
	checkStockUseCase *usecase.CheckStockUseCase
}

func NewFacade(add *usecase.AddProductUseCase, checkStock *usecase.CheckStockUseCase) *Facade {
	return &Facade{
		addUseCase:        add,
		checkStockUseCase: checkStock,
	}
}

func (f *Facade) AddProduct(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error) {
	return f.addUseCase.AddProduct(ctx, input)
}

func (f *Facade) CheckStock(ctx context.Context, productID string) (*dto.CheckStockOutput, error) {
	return f.checkStockUseCase.CheckStock(ctx, productID)
}
