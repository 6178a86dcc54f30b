package client

import (
	"database/sql"

	"storefront/internal/client/controller"
	"storefront/internal/client/repository"
	"storefront/internal/client/usecase"

	"go.uber.org/zap"
)

type Module struct {
	Facade     *Facade
	Controller *controller.Controller
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	repo := repository.NewSQLClientRepository(db)
	facade := NewFacade(
		usecase.NewAddClientUseCase(repo, logger),
		usecase.NewFindClientUseCase(repo),
	)

	return &Module{
		Facade:     facade,
		Controller: controller.NewController(facade, logger),
	}
}
