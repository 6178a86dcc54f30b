package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"storefront/internal/commons"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductFacade interface {
	AddProduct(ctx context.Context, input dto.AddProductInput) (*domain.InventoryProduct, error)
	CheckStock(ctx context.Context, productID string) (*dto.CheckStockOutput, error)
}

type CatalogFacade interface {
	Add(ctx context.Context, p *domain.Product) error
	Find(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type Controller struct {
	products ProductFacade
	catalog  CatalogFacade
	logger   *zap.Logger
}

func NewController(products ProductFacade, catalog CatalogFacade, logger *zap.Logger) *Controller {
	return &Controller{
		products: products,
		catalog:  catalog,
		logger:   logger,
	}
}

// AddProduct registers the product in inventory and then publishes it to the
// catalog with its sales price.
func (c *Controller) AddProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteValidationError(w, "Invalid input format.", logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if details := validateAddProductRequest(req); len(details) > 0 {
		commons.WriteValidationError(w, "Invalid input format.", logger, details...)
		return
	}

	inventory, err := c.products.AddProduct(r.Context(), dto.AddProductInput{
		ID:            req.ID,
		Name:          req.Name,
		Description:   req.Description,
		PurchasePrice: *req.PurchasePrice,
		Stock:         *req.Stock,
	})
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	err = c.catalog.Add(r.Context(), &domain.Product{
		ID:          inventory.ID,
		Name:        inventory.Name,
		Description: inventory.Description,
		SalesPrice:  *req.SalesPrice,
	})
	if err != nil {
		logger.Error("product stored in inventory but not in catalog",
			zap.String("productId", inventory.ID.String()),
			zap.Error(err),
		)
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.AddProductResponse{
		Message:   "Product added successfully.",
		ProductID: inventory.ID.String(),
	}, logger)
}

func (c *Controller) ListProducts(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	products, err := c.catalog.FindAll(r.Context())
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	resp := dto.CatalogListResponse{Products: make([]dto.CatalogProductDTO, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, toCatalogDTO(p))
	}

	commons.WriteJSON(w, http.StatusOK, resp, logger)
}

func (c *Controller) FindProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	p, err := c.catalog.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, toCatalogDTO(*p), logger)
}

func (c *Controller) CheckStock(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	out, err := c.products.CheckStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"productId": out.ProductID,
		"stock":     out.Stock,
	}, logger)
}

func toCatalogDTO(p domain.Product) dto.CatalogProductDTO {
	return dto.CatalogProductDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		SalesPrice:  p.SalesPrice,
	}
}

func validateAddProductRequest(req dto.AddProductRequest) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name is required"})
	}
	if req.PurchasePrice == nil || *req.PurchasePrice < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "purchasePrice", Message: "purchasePrice must be a non-negative number"})
	}
	if req.SalesPrice == nil || *req.SalesPrice < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "salesPrice", Message: "salesPrice must be a non-negative number"})
	}
	if req.Stock == nil || *req.Stock < 0 {
		details = append(details, apperrors.ValidationDetail{Field: "stock", Message: "stock must be a non-negative integer"})
	}

	return details
}
