package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

type ClientFinder interface {
	Find(ctx context.Context, id string) (*domain.Client, error)
}

type StockChecker interface {
	CheckStock(ctx context.Context, productID string) (*dto.CheckStockOutput, error)
}

type CatalogFinder interface {
	Find(ctx context.Context, id string) (*domain.Product, error)
}

type PaymentProcessor interface {
	Process(ctx context.Context, input dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error)
}

type InvoiceGenerator interface {
	Generate(ctx context.Context, input dto.GenerateInvoiceInput) (*dto.GenerateInvoiceOutput, error)
}

type OrderGateway interface {
	AddOrder(ctx context.Context, order *domain.Order) error
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order *domain.Order, invoiceID *string) error
}

type OutcomeRecorder interface {
	RecordOrderPlaced(status string)
}

// Collaborators groups the module facades checkout depends on.
type Collaborators struct {
	Clients  ClientFinder
	Stock    StockChecker
	Catalog  CatalogFinder
	Payments PaymentProcessor
	Invoices InvoiceGenerator
}

type Options struct {
	CatalogConcurrency int
	WriteTimeout       time.Duration
	MaxRetryAttempts   int
}

// ErrNoProductsSelected is returned for an order request with an empty
// product list.
var ErrNoProductsSelected = apperrors.NewValidationError("No products selected", apperrors.ValidationDetail{
	Field:   "products",
	Message: "products must not be empty",
})

type PlaceOrderUseCase struct {
	collab    Collaborators
	gateway   OrderGateway
	publisher EventPublisher
	recorder  OutcomeRecorder
	opts      Options
	logger    *zap.Logger
}

func NewPlaceOrderUseCase(
	collab Collaborators,
	gateway OrderGateway,
	publisher EventPublisher,
	recorder OutcomeRecorder,
	opts Options,
	logger *zap.Logger,
) *PlaceOrderUseCase {
	if opts.MaxRetryAttempts < 1 {
		opts.MaxRetryAttempts = 1
	}
	return &PlaceOrderUseCase{
		collab:    collab,
		gateway:   gateway,
		publisher: publisher,
		recorder:  recorder,
		opts:      opts,
		logger:    logger,
	}
}

func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (*dto.PlaceOrderOutput, error) {
	uc.logger.Info("place order started", zap.String("clientId", input.ClientID), zap.Int("productCount", len(input.Products)))

	client, err := uc.collab.Clients.Find(ctx, input.ClientID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewClientNotFoundError()
		}
		return nil, fmt.Errorf("finding client: %w", err)
	}

	if err := uc.validateProducts(ctx, input.Products); err != nil {
		return nil, err
	}

	products, err := uc.resolveProducts(ctx, input.Products)
	if err != nil {
		return nil, err
	}

	order, err := domain.NewOrder("", *client, products)
	if err != nil {
		return nil, err
	}

	payment, err := uc.collab.Payments.Process(ctx, dto.ProcessPaymentInput{
		OrderID: order.ID().String(),
		Amount:  order.Total(),
	})
	if err != nil {
		return nil, fmt.Errorf("processing payment: %w", err)
	}

	var invoiceID *string
	if payment.Status == domain.TransactionStatusApproved {
		invoice, err := uc.collab.Invoices.Generate(ctx, newInvoiceInput(order))
		if err != nil {
			return nil, apperrors.NewInvoiceGenerationError(order.ID().String(), payment.TransactionID, err)
		}
		if err := order.Approve(); err != nil {
			return nil, err
		}
		invoiceID = &invoice.ID
	}

	if err := uc.saveWithRetry(ctx, order); err != nil {
		return nil, err
	}

	uc.recorder.RecordOrderPlaced(string(order.Status()))
	if err := uc.publisher.PublishOrderPlaced(ctx, order, invoiceID); err != nil {
		uc.logger.Warn("order event not published", zap.String("orderId", order.ID().String()), zap.Error(err))
	}

	uc.logger.Info("order placed",
		zap.String("orderId", order.ID().String()),
		zap.String("status", string(order.Status())),
		zap.String("paymentStatus", payment.Status),
		zap.Float64("total", order.Total()),
	)

	return newPlaceOrderOutput(order, invoiceID, input.Products), nil
}

// validateProducts checks stock in request order and stops at the first
// product that cannot be sold.
func (uc *PlaceOrderUseCase) validateProducts(ctx context.Context, items []dto.PlaceOrderProduct) error {
	if len(items) == 0 {
		return ErrNoProductsSelected
	}

	for _, item := range items {
		stock, err := uc.collab.Stock.CheckStock(ctx, item.ProductID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return apperrors.NewProductNotFoundError(item.ProductID)
			}
			return fmt.Errorf("checking stock for product %s: %w", item.ProductID, err)
		}
		if stock.Stock <= 0 {
			return apperrors.NewOutOfStockError(item.ProductID)
		}
	}

	return nil
}

// resolveProducts looks up every product in the catalog concurrently. All
// lookups run to completion so the reported failure is always the first one
// in request order, regardless of scheduling.
func (uc *PlaceOrderUseCase) resolveProducts(ctx context.Context, items []dto.PlaceOrderProduct) ([]domain.Product, error) {
	products := make([]domain.Product, len(items))
	errs := make([]error, len(items))

	var g errgroup.Group
	if uc.opts.CatalogConcurrency > 0 {
		g.SetLimit(uc.opts.CatalogConcurrency)
	}

	for i, item := range items {
		g.Go(func() error {
			p, err := uc.collab.Catalog.Find(ctx, item.ProductID)
			if err != nil {
				errs[i] = err
				return nil
			}
			products[i] = *p
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err == nil {
			continue
		}
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewProductNotFoundError(items[i].ProductID)
		}
		return nil, fmt.Errorf("finding product %s: %w", items[i].ProductID, err)
	}

	return products, nil
}

func (uc *PlaceOrderUseCase) saveWithRetry(ctx context.Context, order *domain.Order) error {
	if uc.opts.WriteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.opts.WriteTimeout)
		defer cancel()
	}

	backoff := 50 * time.Millisecond
	var err error
	for attempt := 1; attempt <= uc.opts.MaxRetryAttempts; attempt++ {
		err = uc.gateway.AddOrder(ctx, order)
		if err == nil || !database.IsRetryable(err) {
			break
		}
		if attempt == uc.opts.MaxRetryAttempts {
			break
		}

		wait := backoff + time.Duration(rand.Int63n(int64(backoff)/2+1))
		uc.logger.Warn("order write contended, retrying",
			zap.String("orderId", order.ID().String()),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
		)

		select {
		case <-ctx.Done():
			return fmt.Errorf("saving order: %w", ctx.Err())
		case <-time.After(wait):
		}
		backoff *= 2
	}

	if err != nil {
		return fmt.Errorf("saving order: %w", err)
	}
	return nil
}

func newInvoiceInput(order *domain.Order) dto.GenerateInvoiceInput {
	client := order.Client()
	products := order.Products()

	items := make([]dto.InvoiceItemDTO, 0, len(products))
	for _, p := range products {
		items = append(items, dto.InvoiceItemDTO{
			ID:    p.ID.String(),
			Name:  p.Name,
			Price: p.SalesPrice,
		})
	}

	return dto.GenerateInvoiceInput{
		Name:     client.Name,
		Document: client.Document,
		Address: dto.AddressDTO{
			Street:     client.Address.Street,
			Number:     client.Address.Number,
			Complement: client.Address.Complement,
			City:       client.Address.City,
			State:      client.Address.State,
			ZipCode:    client.Address.ZipCode,
		},
		Items: items,
	}
}

func newPlaceOrderOutput(order *domain.Order, invoiceID *string, items []dto.PlaceOrderProduct) *dto.PlaceOrderOutput {
	products := make([]dto.PlaceOrderProduct, len(items))
	copy(products, items)

	return &dto.PlaceOrderOutput{
		ID:        order.ID().String(),
		InvoiceID: invoiceID,
		Total:     order.Total(),
		Status:    string(order.Status()),
		Products:  products,
	}
}
