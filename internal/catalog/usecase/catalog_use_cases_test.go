package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

type mockCatalogRepository struct {
	AddFunc     func(ctx context.Context, p *domain.Product) error
	FindFunc    func(ctx context.Context, id string) (*domain.Product, error)
	FindAllFunc func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockCatalogRepository) Add(ctx context.Context, p *domain.Product) error {
	return m.AddFunc(ctx, p)
}

func (m *mockCatalogRepository) Find(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindFunc(ctx, id)
}

func (m *mockCatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.FindAllFunc(ctx)
}

func TestAdd_RejectsInvalidProduct(t *testing.T) {
	called := false
	repo := &mockCatalogRepository{
		AddFunc: func(ctx context.Context, p *domain.Product) error {
			called = true
			return nil
		},
	}

	err := NewAddUseCase(repo).Add(context.Background(), &domain.Product{ID: "1", SalesPrice: -1})

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.False(t, called)
}

func TestAdd_Persists(t *testing.T) {
	var stored *domain.Product
	repo := &mockCatalogRepository{
		AddFunc: func(ctx context.Context, p *domain.Product) error {
			stored = p
			return nil
		},
	}

	p := &domain.Product{ID: "1", Name: "Product 1", SalesPrice: 200}
	require.NoError(t, NewAddUseCase(repo).Add(context.Background(), p))
	assert.Same(t, p, stored)
}

func TestFind_PassesThroughNotFound(t *testing.T) {
	repo := &mockCatalogRepository{
		FindFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, apperrors.NewProductNotFoundError(id)
		},
	}

	_, err := NewFindUseCase(repo).Find(context.Background(), "9")
	nfe, ok := apperrors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "Product 9 not found", nfe.Message)
}

func TestFindAll_EmptyIsNotNil(t *testing.T) {
	repo := &mockCatalogRepository{
		FindAllFunc: func(ctx context.Context) ([]domain.Product, error) { return nil, nil },
	}

	products, err := NewFindUseCase(repo).FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
