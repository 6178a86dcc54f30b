package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/commons"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutFacade interface {
	PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error)
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}

type Controller struct {
	facade CheckoutFacade
	logger *zap.Logger
}

func NewController(facade CheckoutFacade, logger *zap.Logger) *Controller {
	return &Controller{
		facade: facade,
		logger: logger,
	}
}

func (c *Controller) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		commons.WriteValidationError(w, "Invalid input format.", logger, apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if details := validatePlaceOrderRequest(req); len(details) > 0 {
		commons.WriteValidationError(w, "Invalid input format.", logger, details...)
		return
	}

	out, err := c.facade.PlaceOrder(r.Context(), dto.PlaceOrderInput{
		ClientID: req.ClientID,
		Products: req.Products,
	})
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	commons.WriteJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		Message: "Order placed successfully.",
		Order:   out,
	}, logger)
}

func (c *Controller) FindOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	order, err := c.facade.FindOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		commons.WriteError(w, traceID, err, logger)
		return
	}

	products := order.Products()
	resp := dto.OrderResponse{
		ID:       order.ID().String(),
		ClientID: order.Client().ID.String(),
		Status:   string(order.Status()),
		Total:    order.Total(),
		Products: make([]dto.OrderProductResponse, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, dto.OrderProductResponse{
			ProductID:  p.ID.String(),
			Name:       p.Name,
			SalesPrice: p.SalesPrice,
		})
	}

	commons.WriteJSON(w, http.StatusOK, resp, logger)
}

// validatePlaceOrderRequest checks shape only. An empty product list is left
// to the use case, which reports it as "No products selected".
func validatePlaceOrderRequest(req dto.PlaceOrderRequest) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(req.ClientID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "clientId",
			Message: "clientId is required",
		})
	}

	for idx, p := range req.Products {
		if strings.TrimSpace(p.ProductID) == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   "products[" + strconv.Itoa(idx) + "].productId",
				Message: "productId is required",
			})
		}
	}

	return details
}
