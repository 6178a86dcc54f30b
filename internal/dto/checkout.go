package dto

import "time"

type PlaceOrderInput struct {
	ClientID string
	Products []PlaceOrderProduct
}

type PlaceOrderProduct struct {
	ProductID string `json:"productId"`
}

type PlaceOrderOutput struct {
	ID        string              `json:"id"`
	InvoiceID *string             `json:"invoiceId"`
	Total     float64             `json:"total"`
	Status    string              `json:"status"`
	Products  []PlaceOrderProduct `json:"products"`
}

type PlaceOrderRequest struct {
	ClientID string              `json:"clientId"`
	Products []PlaceOrderProduct `json:"products"`
}

type PlaceOrderResponse struct {
	Message string            `json:"message"`
	Order   *PlaceOrderOutput `json:"order"`
}

type OrderResponse struct {
	ID       string                 `json:"id"`
	ClientID string                 `json:"clientId"`
	Status   string                 `json:"status"`
	Total    float64                `json:"total"`
	Products []OrderProductResponse `json:"products"`
}

type OrderProductResponse struct {
	ProductID  string  `json:"productId"`
	Name       string  `json:"name"`
	SalesPrice float64 `json:"salesPrice"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
