package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/dto"
	apperrors "storefront/internal/errors"
)

type mockTransactionRepository struct {
	SaveFunc func(ctx context.Context, tx *domain.Transaction) error
	saved    []*domain.Transaction
}

func (m *mockTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	m.saved = append(m.saved, tx)
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tx)
	}
	return nil
}

func TestProcess_ApprovesAtThreshold(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		status string
	}{
		{"above threshold", 400, domain.TransactionStatusApproved},
		{"exactly threshold", 100, domain.TransactionStatusApproved},
		{"below threshold", 99.99, domain.TransactionStatusDeclined},
		{"zero", 0, domain.TransactionStatusDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockTransactionRepository{}
			uc := NewProcessPaymentUseCase(repo, 100, zap.NewNop())

			out, err := uc.Process(context.Background(), dto.ProcessPaymentInput{OrderID: "order-1", Amount: tt.amount})
			require.NoError(t, err)
			assert.Equal(t, tt.status, out.Status)
			assert.Equal(t, "order-1", out.OrderID)
			assert.NotEmpty(t, out.TransactionID)
			require.Len(t, repo.saved, 1)
			assert.Equal(t, tt.status, repo.saved[0].Status)
		})
	}
}

func TestProcess_NegativeAmount(t *testing.T) {
	repo := &mockTransactionRepository{}
	uc := NewProcessPaymentUseCase(repo, 100, zap.NewNop())

	_, err := uc.Process(context.Background(), dto.ProcessPaymentInput{OrderID: "order-1", Amount: -1})

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.Empty(t, repo.saved)
}

func TestProcess_RepositoryError(t *testing.T) {
	saveErr := errors.New("insert failed")
	repo := &mockTransactionRepository{
		SaveFunc: func(ctx context.Context, tx *domain.Transaction) error { return saveErr },
	}
	uc := NewProcessPaymentUseCase(repo, 100, zap.NewNop())

	out, err := uc.Process(context.Background(), dto.ProcessPaymentInput{OrderID: "order-1", Amount: 400})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, saveErr)
}
