package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"

	"go.uber.org/zap"
)

type InvoiceRepository interface {
	Generate(ctx context.Context, inv *domain.Invoice) error
	Find(ctx context.Context, id string) (*domain.Invoice, error)
}

type GenerateInvoiceUseCase struct {
	repo   InvoiceRepository
	logger *zap.Logger
}

func NewGenerateInvoiceUseCase(repo InvoiceRepository, logger *zap.Logger) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, input dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error) {
	address, err := domain.NewAddress(
		input.Address.Street,
		input.Address.Number,
		input.Address.Complement,
		input.Address.City,
		input.Address.State,
		input.Address.ZipCode,
	)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InvoiceItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.InvoiceItem{
			ID:    domain.ID(item.ID),
			Name:  item.Name,
			Price: item.Price,
		})
	}

	inv, err := domain.NewInvoice("", input.Name, input.Document, address, items)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Generate(ctx, inv); err != nil {
		return nil, err
	}

	uc.logger.Info("invoice generated",
		zap.String("invoiceId", inv.ID.String()),
		zap.Int("items", len(inv.Items)),
		zap.Float64("total", inv.Total()),
	)

	return &dto.GenerateInvoiceOutput{
		ID:       inv.ID.String(),
		Name:     inv.Name,
		Document: inv.Document,
		Address:  input.Address,
		Items:    input.Items,
		Total:    inv.Total(),
	}, nil
}
