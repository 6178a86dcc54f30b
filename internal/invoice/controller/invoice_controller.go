package controller

import (
	"context"
	"net/http"

	"storefront/internal/commons"
	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvoiceFinder interface {
	Find(ctx context.Context, id string) (*domain.Invoice, error)
}

type Controller struct {
	finder InvoiceFinder
	logger *zap.Logger
}

func NewController(finder InvoiceFinder, logger *zap.Logger) *Controller {
	return &Controller{
		finder: finder,
		logger: logger,
	}
}

func (c *Controller) FindInvoice(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	inv, err := c.finder.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			commons.WriteJSON(w, http.StatusNotFound, map[string]string{"message": "Invoice not found."}, logger)
			return
		}
		commons.WriteError(w, traceID, err, logger)
		return
	}

	items := make([]dto.InvoiceItemDTO, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, dto.InvoiceItemDTO{
			ID:    item.ID.String(),
			Name:  item.Name,
			Price: item.Price,
		})
	}

	commons.WriteJSON(w, http.StatusOK, dto.InvoiceResponse{
		ID:       inv.ID.String(),
		Name:     inv.Name,
		Document: inv.Document,
		Address: dto.AddressDTO{
			Street:     inv.Address.Street,
			Number:     inv.Address.Number,
			Complement: inv.Address.Complement,
			City:       inv.Address.City,
			State:      inv.Address.State,
			ZipCode:    inv.Address.ZipCode,
		},
		Items:     items,
		Total:     inv.Total(),
		CreatedAt: inv.CreatedAt,
	}, logger)
}
