package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type SQLTransactionRepository struct {
	db *sql.DB
}

func NewSQLTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db}
}

func (r *SQLTransactionRepository) Save(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, order_id, amount, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID.String(), tx.OrderID, tx.Amount, tx.Status, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	return nil
}

func (r *SQLTransactionRepository) Find(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, order_id, amount, status, created_at, updated_at
		FROM transactions
		WHERE id = ?
	`

	var tx domain.Transaction
	var txID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&txID, &tx.OrderID, &tx.Amount, &tx.Status, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Transaction %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying transaction by id: %w", err)
	}

	tx.ID = domain.ID(txID)
	return &tx, nil
}
