package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

type SQLCatalogRepository struct {
	db *sql.DB
}

func NewSQLCatalogRepository(db *sql.DB) *SQLCatalogRepository {
	return &SQLCatalogRepository{db: db}
}

func (r *SQLCatalogRepository) Add(ctx context.Context, p *domain.Product) error {
	query := `INSERT INTO catalog_products (id, name, description, sales_price) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, p.ID.String(), p.Name, p.Description, p.SalesPrice)
	if database.IsDuplicateKey(err) {
		return errors.NewConflictError(fmt.Sprintf("catalog product with id %s already exists", p.ID))
	}
	if err != nil {
		return fmt.Errorf("inserting catalog product: %w", err)
	}

	return nil
}

func (r *SQLCatalogRepository) Find(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT id, name, description, sales_price FROM catalog_products WHERE id = ?`

	var p domain.Product
	var productID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&productID, &p.Name, &p.Description, &p.SalesPrice)
	if err == sql.ErrNoRows {
		return nil, errors.NewProductNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying catalog product by id: %w", err)
	}

	p.ID = domain.ID(productID)
	return &p, nil
}

func (r *SQLCatalogRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, description, sales_price FROM catalog_products ORDER BY name, id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying catalog products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var productID string
		if err := rows.Scan(&productID, &p.Name, &p.Description, &p.SalesPrice); err != nil {
			return nil, fmt.Errorf("scanning catalog product: %w", err)
		}
		p.ID = domain.ID(productID)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating catalog products: %w", err)
	}

	return products, nil
}
