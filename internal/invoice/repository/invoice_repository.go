package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

type SQLInvoiceRepository struct {
	db *sql.DB
}

func NewSQLInvoiceRepository(db *sql.DB) *SQLInvoiceRepository {
	return &SQLInvoiceRepository{db: db}
}

// Generate stores the invoice header and its items atomically. Items keep
// their position through line_number.
func (r *SQLInvoiceRepository) Generate(ctx context.Context, inv *domain.Invoice) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning invoice transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invoices (id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		inv.ID.String(), inv.Name, inv.Document,
		inv.Address.Street, inv.Address.Number, inv.Address.Complement,
		inv.Address.City, inv.Address.State, inv.Address.ZipCode,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}

	for i, item := range inv.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO invoice_items (id, invoice_id, product_id, name, price, line_number)
			VALUES (?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), inv.ID.String(), item.ID.String(), item.Name, item.Price, i)
		if err != nil {
			return fmt.Errorf("inserting invoice item %s: %w", item.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing invoice: %w", err)
	}

	return nil
}

func (r *SQLInvoiceRepository) Find(ctx context.Context, id string) (*domain.Invoice, error) {
	var inv domain.Invoice
	var invoiceID string
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, document, street, number, complement, city, state, zip_code, created_at, updated_at
		FROM invoices
		WHERE id = ?
	`, id).Scan(
		&invoiceID, &inv.Name, &inv.Document,
		&inv.Address.Street, &inv.Address.Number, &inv.Address.Complement,
		&inv.Address.City, &inv.Address.State, &inv.Address.ZipCode,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewResourceNotFoundError(errors.ResourceInvoice, "Invoice not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying invoice by id: %w", err)
	}
	inv.ID = domain.ID(invoiceID)

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return &inv, nil
}

func (r *SQLInvoiceRepository) findItems(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, name, price
		FROM invoice_items
		WHERE invoice_id = ?
		ORDER BY line_number
	`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("querying invoice items: %w", err)
	}
	defer rows.Close()

	items := []domain.InvoiceItem{}
	for rows.Next() {
		var item domain.InvoiceItem
		var productID string
		if err := rows.Scan(&productID, &item.Name, &item.Price); err != nil {
			return nil, fmt.Errorf("scanning invoice item: %w", err)
		}
		item.ID = domain.ID(productID)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice items: %w", err)
	}

	return items, nil
}
