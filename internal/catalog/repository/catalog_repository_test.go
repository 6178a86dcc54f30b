package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/testutil"
)

func TestCatalogRepository_AddAndFind(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLCatalogRepository(db)

	product, err := domain.NewProduct("1", "Product 1", "Description 1", 200)
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), product))

	found, err := repo.Find(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, *product, *found)
}

func TestCatalogRepository_Find_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLCatalogRepository(db)

	_, err := repo.Find(context.Background(), "42")
	nfe, ok := errors.IsNotFoundError(err)
	require.True(t, ok)
	assert.Equal(t, "Product 42 not found", nfe.Message)
}

func TestCatalogRepository_FindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	testutil.SeedCatalogProduct(t, db, "2", "Product 2", 200)
	testutil.SeedCatalogProduct(t, db, "1", "Product 1", 100)

	repo := NewSQLCatalogRepository(db)
	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, domain.ID("1"), products[0].ID)
	assert.Equal(t, 100.0, products[0].SalesPrice)
	assert.Equal(t, domain.ID("2"), products[1].ID)
}

func TestCatalogRepository_FindAll_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	products, err := NewSQLCatalogRepository(db).FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogRepository_Add_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewSQLCatalogRepository(db)
	product := &domain.Product{ID: "1", Name: "Product 1", SalesPrice: 10}
	require.NoError(t, repo.Add(context.Background(), product))

	_, ok := errors.IsConflictError(repo.Add(context.Background(), product))
	assert.True(t, ok)
}
