package errors

import (
	stderrors "errors"
	"fmt"
)

const (
	ResourceClient  = "client"
	ResourceProduct = "product"
	ResourceOrder   = "order"
	ResourceInvoice = "invoice"
)

type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func NewResourceNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

func NewClientNotFoundError() *NotFoundError {
	return NewResourceNotFoundError(ResourceClient, "Client not found")
}

func NewProductNotFoundError(productID string) *NotFoundError {
	return NewResourceNotFoundError(ResourceProduct, fmt.Sprintf("Product %s not found", productID))
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nfe *NotFoundError
	if stderrors.As(err, &nfe) {
		return nfe, true
	}
	return nil, false
}

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// OutOfStockError reports the first product, in request order, without stock.
type OutOfStockError struct {
	ProductID string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("Product %s is out of stock", e.ProductID)
}

func NewOutOfStockError(productID string) *OutOfStockError {
	return &OutOfStockError{ProductID: productID}
}

func IsOutOfStockError(err error) (*OutOfStockError, bool) {
	var ose *OutOfStockError
	if stderrors.As(err, &ose) {
		return ose, true
	}
	return nil, false
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// InvoiceGenerationError is returned when payment was approved but the invoice
// could not be issued. The order is left unpersisted in its pre-approval state.
type InvoiceGenerationError struct {
	OrderID       string
	TransactionID string
	Cause         error
}

func (e *InvoiceGenerationError) Error() string {
	return fmt.Sprintf("generating invoice for order %s: %v", e.OrderID, e.Cause)
}

func (e *InvoiceGenerationError) Unwrap() error {
	return e.Cause
}

func NewInvoiceGenerationError(orderID, transactionID string, cause error) *InvoiceGenerationError {
	return &InvoiceGenerationError{
		OrderID:       orderID,
		TransactionID: transactionID,
		Cause:         cause,
	}
}

func IsInvoiceGenerationError(err error) (*InvoiceGenerationError, bool) {
	var ige *InvoiceGenerationError
	if stderrors.As(err, &ige) {
		return ige, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	var ie *InternalError
	if stderrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
