package noop

import (
	"context"

	"storefront/internal/domain"
)

// Publisher is used when Kafka is not configured.
type Publisher struct{}

func (Publisher) PublishOrderPlaced(_ context.Context, _ *domain.Order, _ *string) error { return nil }
