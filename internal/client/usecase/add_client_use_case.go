package usecase

import (
	"context"

	"storefront/internal/domain"
	"storefront/internal/dto"

	"go.uber.org/zap"
)

type ClientRepository interface {
	Add(ctx context.Context, client *domain.Client) error
	Find(ctx context.Context, id string) (*domain.Client, error)
}

type AddClientUseCase struct {
	repo   ClientRepository
	logger *zap.Logger
}

func NewAddClientUseCase(repo ClientRepository, logger *zap.Logger) *AddClientUseCase {
	return &AddClientUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *AddClientUseCase) Add(ctx context.Context, input dto.AddClientInput) (*domain.Client, error) {
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

	client, err := domain.NewClient(input.ID, input.Name, input.Email, input.Document, address)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Add(ctx, client); err != nil {
		return nil, err
	}

	uc.logger.Info("client added", zap.String("clientId", client.ID.String()))
	return client, nil
}
