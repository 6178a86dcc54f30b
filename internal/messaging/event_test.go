package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func TestNewOrderPlacedEvent(t *testing.T) {
	order, err := domain.NewOrder("order-1", domain.Client{ID: "1", Name: "Client 1"}, []domain.Product{
		{ID: "1", Name: "Product 1", SalesPrice: 200},
		{ID: "2", Name: "Product 2", SalesPrice: 200},
	})
	require.NoError(t, err)
	require.NoError(t, order.Approve())

	invoiceID := "inv-1"
	event := NewOrderPlacedEvent(order, &invoiceID)

	assert.Equal(t, EventOrderPlaced, event.EventType)
	assert.Equal(t, "order-1", event.OrderID)
	assert.Equal(t, "1", event.ClientID)
	assert.Equal(t, "approved", event.Status)
	assert.Equal(t, &invoiceID, event.InvoiceID)
	assert.Equal(t, 400.0, event.Total)
	assert.Equal(t, []string{"1", "2"}, event.ProductIDs)
	assert.False(t, event.OccurredAt.IsZero())
}
