package payment

import (
	"context"

	"storefront/internal/dto"
	"storefront/internal/payment/usecase"
)

type Facade struct {
	processUseCase *usecase.ProcessPaymentUseCase
}

func NewFacade(process *usecase.ProcessPaymentUseCase) *Facade {
	return &Facade{processUseCase: process}
}

func (f *Facade) Process(ctx context.Context, input dto.ProcessPaymentInput) (*dto.ProcessPaymentOutput, error) {
	return f.processUseCase.Process(ctx, input)
}
