package invoice

import (
	"database/sql"

	"storefront/internal/invoice/controller"
	"storefront/internal/invoice/repository"
	"storefront/internal/invoice/usecase"

	"go.uber.org/zap"
)

type Module struct {
	Facade     *Facade
	Controller *controller.Controller
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewSQLInvoiceRepository(db)
	facade := NewFacade(
		usecase.NewGenerateInvoiceUseCase(repo, logger),
		usecase.NewFindInvoiceUseCase(repo),
	)

	return &Module{
		Facade:     facade,
		Controller: controller.NewController(facade, logger),
	}
}
