package catalog

import (
	"database/sql"

	"storefront/internal/catalog/repository"
	"storefront/internal/catalog/usecase"
)

type Module struct {
	Facade *Facade
}

func NewModule(db *sql.DB) *Module {
	repo := repository.NewSQLCatalogRepository(db)
	return &Module{
		Facade: NewFacade(usecase.NewAddUseCase(repo), usecase.NewFindUseCase(repo)),
	}
}
