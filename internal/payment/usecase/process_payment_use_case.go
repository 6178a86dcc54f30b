package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"

	"go.uber.org/zap"
)

type TransactionRepository interface {
	Save(ctx context.Context, tx *domain.Transaction) error
}

type ProcessPaymentUseCase struct {
	repo              TransactionRepository
	approvalThreshold float64
	logger            *zap.Logger
}

func NewProcessPaymentUseCase(repo TransactionRepository, approvalThreshold float64, logger *zap.Logger) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{
		repo:              repo,
		approvalThreshold: approvalThreshold,
		logger:            logger,
	}
}

// Process records a transaction for the order. A declined payment is a normal
// outcome and is reported through the returned status, not as an error.
func (uc *ProcessPaymentUseCase) Process(ctx context.Context, input dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error) {
	tx, err := domain.NewTransaction("", input.OrderID, input.Amount)
	if err != nil {
		return nil, err
	}

	tx.Process(uc.approvalThreshold)

	if err := uc.repo.Save(ctx, tx); err != nil {
		return nil, err
	}

	uc.logger.Info("payment processed",
		zap.String("transactionId", tx.ID.String()),
		zap.String("orderId", tx.OrderID),
		zap.Float64("amount", tx.Amount),
		zap.String("status", tx.Status),
	)

	return &dto.ProcessPaymentOutput{
		TransactionID: tx.ID.String(),
		OrderID:       tx.OrderID,
		Amount:        tx.Amount,
		Status:        tx.Status,
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}, nil
}
