package domain

import (
	"fmt"

	apperrors "storefront/internal/errors"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusApproved OrderStatus = "approved"
)

// Order is the checkout aggregate. The client is held as a snapshot and the
// product list is copied on the way in and out, so the total can only change
// through the aggregate itself.
type Order struct {
	id       ID
	client   Client
	products []Product
	status   OrderStatus
}

// NewOrder builds a pending order. An empty id is replaced by a generated one.
func NewOrder(id string, client Client, products []Product) (*Order, error) {
	return RestoreOrder(id, client, products, OrderStatusPending)
}

// RestoreOrder rebuilds an order read back from storage.
func RestoreOrder(id string, client Client, products []Product, status OrderStatus) (*Order, error) {
	if len(products) == 0 {
		return nil, apperrors.NewValidationError("order must have at least one product", apperrors.ValidationDetail{
			Field:   "products",
			Message: "products must not be empty",
		})
	}
	if status != OrderStatusPending && status != OrderStatusApproved {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown order status %q", status))
	}

	items := make([]Product, len(products))
	copy(items, products)

	return &Order{
		id:       NewID(id),
		client:   client,
		products: items,
		status:   status,
	}, nil
}

func (o *Order) ID() ID {
	return o.id
}

func (o *Order) Client() Client {
	return o.client
}

func (o *Order) Status() OrderStatus {
	return o.status
}

func (o *Order) Products() []Product {
	items := make([]Product, len(o.products))
	copy(items, o.products)
	return items
}

func (o *Order) Total() float64 {
	var total float64
	for _, p := range o.products {
		total += p.SalesPrice
	}
	return total
}

// Approve moves a pending order to approved. It fails on any other status.
func (o *Order) Approve() error {
	if o.status != OrderStatusPending {
		return apperrors.NewConflictError(fmt.Sprintf("order %s is not pending", o.id))
	}
	o.status = OrderStatusApproved
	return nil
}
