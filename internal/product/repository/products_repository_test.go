package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/testutil"
)

// Unit Tests

func TestNewSQLProductRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewSQLProductRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestProductRepository_AddAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLProductRepository(db)

	product, err := domain.NewInventoryProduct("1", "Product 1", "Description 1", 100, 10)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), product))

	found, err := repo.Find(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("1"), found.ID)
	assert.Equal(t, "Product 1", found.Name)
	assert.Equal(t, "Description 1", found.Description)
	assert.Equal(t, 100.0, found.PurchasePrice)
	assert.Equal(t, 10, found.Stock)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestProductRepository_Find_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLProductRepository(db)

	product, err := repo.Find(context.Background(), "9999")
	assert.Nil(t, product)

	nfe, ok := errors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ResourceProduct, nfe.Resource)
	assert.Equal(t, "Product 9999 not found", nfe.Message)
}

func TestProductRepository_Find_ZeroStock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedInventoryProduct(t, db, "3", "Product 3", 0)

	repo := NewSQLProductRepository(db)
	found, err := repo.Find(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
	assert.False(t, found.InStock())
}

func TestProductRepository_Add_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLProductRepository(db)

	product, err := domain.NewInventoryProduct("1", "Product 1", "", 100, 10)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), product))

	err = repo.Add(context.Background(), product)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}
