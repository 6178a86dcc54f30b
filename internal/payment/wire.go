package payment

import (
	"database/sql"

	"storefront/internal/config"
	"storefront/internal/payment/repository"
	"storefront/internal/payment/usecase"

	"go.uber.org/zap"
)

type Module struct {
	Facade *Facade
}

func NewModule(db *sql.DB, cfg config.PaymentConfig, logger *zap.Logger) *Module {
	repo := repository.NewSQLTransactionRepository(db)
	return &Module{
		Facade: NewFacade(usecase.NewProcessPaymentUseCase(repo, cfg.ApprovalThreshold, logger)),
	}
}
