package product

import (
	"database/sql"

	"storefront/internal/product/controller"
	"storefront/internal/product/repository"
	"storefront/internal/product/usecase"

	"go.uber.org/zap"
)

type Module struct {
	Facade     *Facade
	Controller *controller.Controller
}

// NewModule wires inventory administration. The controller also publishes
// new products to the catalog, so the catalog facade is passed in.
func NewModule(db *sql.DB, catalog controller.CatalogFacade, logger *zap.Logger) *Module {
	repo := repository.NewSQLProductRepository(db)
	facade := NewFacade(
		usecase.NewAddProductUseCase(repo, logger),
		usecase.NewCheckStockUseCase(repo),
	)

	return &Module{
		Facade:     facade,
		Controller: controller.NewController(facade, catalog, logger),
	}
}
