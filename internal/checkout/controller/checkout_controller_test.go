package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/checkout/usecase"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockCheckoutFacade struct {
	PlaceOrderFunc func(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error)
	FindOrderFunc  func(ctx context.Context, id string) (*domain.Order, error)
}

func (m *mockCheckoutFacade) PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
	return m.PlaceOrderFunc(ctx, input)
}

func (m *mockCheckoutFacade) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindOrderFunc(ctx, id)
}

func newRouter(c *Controller) http.Handler {
	r := chi.NewRouter()
	r.Post("/checkout", c.PlaceOrder)
	r.Get("/checkout/{id}", c.FindOrder)
	return r
}

func post(t *testing.T, c *Controller, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	newRouter(c).ServeHTTP(rec, req)
	return rec
}

func TestPlaceOrder_Created(t *testing.T) {
	invoiceID := "inv-1"
	facade := &mockCheckoutFacade{
		PlaceOrderFunc: func(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
			assert.Equal(t, "1", input.ClientID)
			assert.Len(t, input.Products, 2)
			return &dto.PlaceOrderOutput{
				ID:        "order-1",
				InvoiceID: &invoiceID,
				Total:     400,
				Status:    "approved",
				Products:  input.Products,
			}, nil
		},
	}

	rec := post(t, NewController(facade, zap.NewNop()), `{"clientId":"1","products":[{"productId":"1"},{"productId":"2"}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"message": "Order placed successfully.",
		"order": {
			"id": "order-1",
			"invoiceId": "inv-1",
			"total": 400,
			"status": "approved",
			"products": [{"productId":"1"},{"productId":"2"}]
		}
	}`, rec.Body.String())
}

func TestPlaceOrder_DeclinedHasNullInvoice(t *testing.T) {
	facade := &mockCheckoutFacade{
		PlaceOrderFunc: func(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
			return &dto.PlaceOrderOutput{ID: "order-1", Total: 50, Status: "pending", Products: input.Products}, nil
		},
	}

	rec := post(t, NewController(facade, zap.NewNop()), `{"clientId":"1","products":[{"productId":"4"}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	invoice, present := resp["order"]["invoiceId"]
	assert.True(t, present)
	assert.Nil(t, invoice)
}

func TestPlaceOrder_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"client not found", apperrors.NewClientNotFoundError(), http.StatusNotFound, "Client not found"},
		{"product not found", apperrors.NewProductNotFoundError("9"), http.StatusNotFound, "Product 9 not found"},
		{"no products", usecase.ErrNoProductsSelected, http.StatusBadRequest, "No products selected"},
		{"out of stock", apperrors.NewOutOfStockError("3"), http.StatusUnprocessableEntity, "Product 3 is out of stock"},
		{"invoice failure", apperrors.NewInvoiceGenerationError("o", "t", assert.AnError), http.StatusBadGateway, "invoice could not be generated"},
		{"conflict", apperrors.NewConflictError("order order-1 is not pending"), http.StatusConflict, "not pending"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "an unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facade := &mockCheckoutFacade{
				PlaceOrderFunc: func(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
					return nil, tt.err
				},
			}

			rec := post(t, NewController(facade, zap.NewNop()), `{"clientId":"1","products":[]}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}

func TestPlaceOrder_InvalidBody(t *testing.T) {
	called := false
	facade := &mockCheckoutFacade{
		PlaceOrderFunc: func(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
			called = true
			return nil, nil
		},
	}
	c := NewController(facade, zap.NewNop())

	for _, body := range []string{`not json`, `{"products":[{"productId":"1"}]}`, `{"clientId":"1","products":[{"productId":""}]}`} {
		rec := post(t, c, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Contains(t, rec.Body.String(), "Invalid input format.")
	}
	assert.False(t, called)
}

func TestFindOrder_OK(t *testing.T) {
	order, err := domain.NewOrder("order-1", domain.Client{ID: "1"}, []domain.Product{
		{ID: "1", Name: "Product 1", SalesPrice: 200},
		{ID: "2", Name: "Product 2", SalesPrice: 200},
	})
	require.NoError(t, err)

	facade := &mockCheckoutFacade{
		FindOrderFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			assert.Equal(t, "order-1", id)
			return order, nil
		},
	}

	rec := httptest.NewRecorder()
	newRouter(NewController(facade, zap.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/order-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "1", resp.ClientID)
	assert.Equal(t, 400.0, resp.Total)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Product 2", resp.Products[1].Name)
}

func TestFindOrder_NotFound(t *testing.T) {
	facade := &mockCheckoutFacade{
		FindOrderFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.ResourceOrder, "Order not found")
		},
	}

	rec := httptest.NewRecorder()
	newRouter(NewController(facade, zap.NewNop())).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/x", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Order not found")
}
