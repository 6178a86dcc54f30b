// Package messaging defines the domain events emitted by checkout.
package messaging

import (
	"time"

	"storefront/internal/domain"
)

const EventOrderPlaced = "order.placed"

// OrderEvent is the Kafka message envelope for a placed order.
type OrderEvent struct {
	EventType  string    `json:"event_type"`
	OrderID    string    `json:"order_id"`
	ClientID   string    `json:"client_id"`
	Status     string    `json:"status"`
	InvoiceID  *string   `json:"invoice_id"`
	Total      float64   `json:"total"`
	ProductIDs []string  `json:"product_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewOrderPlacedEvent(order *domain.Order, invoiceID *string) OrderEvent {
	products := order.Products()
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID.String())
	}

	return OrderEvent{
		EventType:  EventOrderPlaced,
		OrderID:    order.ID().String(),
		ClientID:   order.Client().ID.String(),
		Status:     string(order.Status()),
		InvoiceID:  invoiceID,
		Total:      order.Total(),
		ProductIDs: ids,
		OccurredAt: time.Now().UTC(),
	}
}
