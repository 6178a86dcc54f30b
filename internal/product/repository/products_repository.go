package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

type SQLProductRepository struct {
	db *sql.DB
}

func NewSQLProductRepository(db *sql.DB) *SQLProductRepository {
	return &SQLProductRepository{db: db}
}

func (r *SQLProductRepository) Add(ctx context.Context, p *domain.InventoryProduct) error {
	query := `
		INSERT INTO products (id, name, description, purchase_price, stock, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		p.ID.String(), p.Name, p.Description, p.PurchasePrice, p.Stock, p.CreatedAt, p.UpdatedAt,
	)
	if database.IsDuplicateKey(err) {
		return errors.NewConflictError(fmt.Sprintf("product with id %s already exists", p.ID))
	}
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *SQLProductRepository) Find(ctx context.Context, id string) (*domain.InventoryProduct, error) {
	query := `
		SELECT id, name, description, purchase_price, stock, created_at, updated_at
		FROM products
		WHERE id = ?
	`

	var p domain.InventoryProduct
	var productID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&productID, &p.Name, &p.Description, &p.PurchasePrice, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewProductNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	p.ID = domain.ID(productID)
	return &p, nil
}
