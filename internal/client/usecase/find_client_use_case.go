package usecase

import (
	"context"

	"storefront/internal/domain"
)

type FindClientUseCase struct {
	repo ClientRepository
}

func NewFindClientUseCase(repo ClientRepository) *FindClientUseCase {
	return &FindClientUseCase{repo: repo}
}

func (uc *FindClientUseCase) Find(ctx context.Context, id string) (*domain.Client, error) {
	return uc.repo.Find(ctx, id)
}
