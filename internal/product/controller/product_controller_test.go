package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockProductFacade struct {
	AddProductFunc func(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error)
	CheckStockFunc func(ctx context.Context, productID string) (*dto.CheckStockOutput, error)
}

func (m *mockProductFacade) AddProduct(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error) {
	return m.AddProductFunc(ctx, input)
}

func (m *mockProductFacade) CheckStock(ctx context.Context, productID string) (*dto.CheckStockOutput, error) {
	return m.CheckStockFunc(ctx, productID)
}

type mockCatalogFacade struct {
	AddFunc     func(ctx context.Context, p *domain.Product) error
	FindFunc    func(ctx context.Context, id string) (*domain.Product, error)
	FindAllFunc func(ctx context.Context) ([]domain.Product, error)
}

func (m *mockCatalogFacade) Add(ctx context.Context, p *domain.Product) error {
	return m.AddFunc(ctx, p)
}

func (m *mockCatalogFacade) Find(ctx context.Context, id string) (*domain.Product, error) {
	return m.FindFunc(ctx, id)
}

func (m *mockCatalogFacade) FindAll(ctx context.Context) ([]domain.Product, error) {
	return m.FindAllFunc(ctx)
}

func newRouter(c *Controller) http.Handler {
	r := chi.NewRouter()
	r.Post("/product", c.AddProduct)
	r.Get("/product", c.ListProducts)
	r.Get("/product/{id}", c.FindProduct)
	r.Get("/product/{id}/stock", c.CheckStock)
	return r
}

func TestAddProduct_PublishesToCatalog(t *testing.T) {
	products := &mockProductFacade{
		AddProductFunc: func(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error) {
			assert.Equal(t, 100.0, input.PurchasePrice)
			assert.Equal(t, 10, input.Stock)
			return &domain.InventoryProduct{ID: "1", Name: input.Name, Description: input.Description}, nil
		},
	}
	var published *domain.Product
	catalog := &mockCatalogFacade{
		AddFunc: func(ctx context.Context, p *domain.Product) error {
			published = p
			return nil
		},
	}

	body := `{"id":"1","name":"Product 1","description":"d","purchasePrice":100,"salesPrice":200,"stock":10}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader(body))
	newRouter(NewController(products, catalog, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.AddProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Product added successfully.", resp.Message)
	assert.Equal(t, "1", resp.ProductID)

	require.NotNil(t, published)
	assert.Equal(t, domain.ID("1"), published.ID)
	assert.Equal(t, 200.0, published.SalesPrice)
}

func TestAddProduct_MissingFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader(`{"name":"Product 1"}`))
	newRouter(NewController(&mockProductFacade{}, &mockCatalogFacade{}, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid input format.")
	assert.Contains(t, rec.Body.String(), "salesPrice")
	assert.Contains(t, rec.Body.String(), "stock")
}

func TestAddProduct_InvalidJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/product", strings.NewReader(`{`))
	newRouter(NewController(&mockProductFacade{}, &mockCatalogFacade{}, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProducts(t *testing.T) {
	catalog := &mockCatalogFacade{
		FindAllFunc: func(ctx context.Context) ([]domain.Product, error) {
			return []domain.Product{{ID: "1", Name: "Product 1", SalesPrice: 200}}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product", nil)
	newRouter(NewController(&mockProductFacade{}, catalog, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CatalogListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, 200.0, resp.Products[0].SalesPrice)
}

func TestFindProduct_NotFound(t *testing.T) {
	catalog := &mockCatalogFacade{
		FindFunc: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, apperrors.NewProductNotFoundError(id)
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/7", nil)
	newRouter(NewController(&mockProductFacade{}, catalog, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product 7 not found")
}

func TestCheckStock(t *testing.T) {
	products := &mockProductFacade{
		CheckStockFunc: func(ctx context.Context, productID string) (*dto.CheckStockOutput, error) {
			return &dto.CheckStockOutput{ProductID: productID, Stock: 0}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/3/stock", nil)
	newRouter(NewController(products, &mockCatalogFacade{}, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"productId":"3","stock":0}`, rec.Body.String())
}

func TestCheckStock_InternalError(t *testing.T) {
	products := &mockProductFacade{
		CheckStockFunc: func(ctx context.Context, productID string) (*dto.CheckStockOutput, error) {
			return nil, errors.New("db down")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/product/3/stock", nil)
	newRouter(NewController(products, &mockCatalogFacade{}, zap.NewNop())).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
