package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"storefront/internal/domain"
	"storefront/internal/errors"
)

type SQLOrderRepository struct {
	db *sql.DB
}

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{db: db}
}

// AddOrder writes the order header and one line per product in a single
// transaction. Every line gets its own id so a product may repeat.
func (r *SQLOrderRepository) AddOrder(ctx context.Context, order *domain.Order) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning order transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, client_id, status) VALUES (?, ?, ?)`,
		order.ID().String(), order.Client().ID.String(), string(order.Status()),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	if err = r.insertLines(ctx, tx, order); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func (r *SQLOrderRepository) insertLines(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	query := `INSERT INTO order_products (id, order_id, product_id, line_number) VALUES (?, ?, ?, ?)`

	for i, p := range order.Products() {
		_, err := tx.ExecContext(ctx, query, uuid.New().String(), order.ID().String(), p.ID.String(), i)
		if err != nil {
			return fmt.Errorf("inserting order line for product %s: %w", p.ID, err)
		}
	}

	return nil
}

// FindOrder rebuilds the order with the client snapshot and the current
// catalog data of every line.
func (r *SQLOrderRepository) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT o.id, o.status,
		       c.id, c.name, c.email, c.document,
		       c.street, c.number, c.complement, c.city, c.state, c.zip_code,
		       c.created_at, c.updated_at
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = ?
	`

	var orderID, status, clientID string
	var client domain.Client
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&orderID, &status,
		&clientID, &client.Name, &client.Email, &client.Document,
		&client.Address.Street, &client.Address.Number, &client.Address.Complement,
		&client.Address.City, &client.Address.State, &client.Address.ZipCode,
		&client.CreatedAt, &client.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewResourceNotFoundError(errors.ResourceOrder, "Order not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}
	client.ID = domain.ID(clientID)

	products, err := r.findLines(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order, err := domain.RestoreOrder(orderID, client, products, domain.OrderStatus(status))
	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("order %s is inconsistent", orderID), err)
	}

	return order, nil
}

func (r *SQLOrderRepository) findLines(ctx context.Context, orderID string) ([]domain.Product, error) {
	query := `
		SELECT op.product_id, cp.id, cp.name, cp.description, cp.sales_price
		FROM order_products op
		LEFT JOIN catalog_products cp ON cp.id = op.product_id
		WHERE op.order_id = ?
		ORDER BY op.line_number
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order lines: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var lineProductID string
		var catalogID, name, description sql.NullString
		var salesPrice sql.NullFloat64
		if err := rows.Scan(&lineProductID, &catalogID, &name, &description, &salesPrice); err != nil {
			return nil, fmt.Errorf("scanning order line: %w", err)
		}
		if !catalogID.Valid {
			return nil, errors.NewInternalError(
				fmt.Sprintf("order %s references product %s missing from catalog", orderID, lineProductID), nil)
		}
		products = append(products, domain.Product{
			ID:          domain.ID(catalogID.String),
			Name:        name.String,
			Description: description.String,
			SalesPrice:  salesPrice.Float64,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order lines: %w", err)
	}

	return products, nil
}
