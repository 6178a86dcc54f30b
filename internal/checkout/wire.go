package checkout

import (
	"database/sql"

	"storefront/internal/checkout/controller"
	"storefront/internal/checkout/repository"
	"storefront/internal/checkout/usecase"
	"storefront/internal/config"

	"go.uber.org/zap"
)

type Module struct {
	Facade     *Facade
	Controller *controller.Controller
}

func NewModule(
	db *sql.DB,
	cfg config.CheckoutConfig,
	collab usecase.Collaborators,
	publisher usecase.EventPublisher,
	recorder usecase.OutcomeRecorder,
	logger *zap.Logger,
) *Module {
	repo := repository.NewSQLOrderRepository(db)

	placeOrder := usecase.NewPlaceOrderUseCase(collab, repo, publisher, recorder, usecase.Options{
		CatalogConcurrency: cfg.CatalogConcurrency,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRetryAttempts:   cfg.MaxRetryAttempts,
	}, logger)

	facade := NewFacade(placeOrder, usecase.NewFindOrderUseCase(repo))

	return &Module{
		Facade:     facade,
		Controller: controller.NewController(facade, logger),
	}
}
