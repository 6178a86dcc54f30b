package usecase

import (
	"context"

	"storefront/internal/domain"
)

type CatalogRepository interface {
	Add(ctx context.Context, p *domain.Product) error
	Find(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type AddUseCase struct {
	repo CatalogRepository
}

func NewAddUseCase(repo CatalogRepository) *AddUseCase {
	return &AddUseCase{repo: repo}
}

func (uc *AddUseCase) Add(ctx context.Context, p *domain.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return uc.repo.Add(ctx, p)
}

type FindUseCase struct {
	repo CatalogRepository
}

func NewFindUseCase(repo CatalogRepository) *FindUseCase {
	return &FindUseCase{repo: repo}
}

func (uc *FindUseCase) Find(ctx context.Context, id string) (*domain.Product, error) {
	return uc.repo.Find(ctx, id)
}

// FindAll never returns a nil slice so listings encode as [].
func (uc *FindUseCase) FindAll(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}
