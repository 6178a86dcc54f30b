package repository

import (
	"context"
	"database/sql"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/errors"
	"storefront/internal/infrastructure/database"
)

type SQLClientRepository struct {
	db *sql.DB
}

func NewSQLClientRepository(db *sql.DB) *SQLClientRepository {
	return &SQLClientRepository{db: db}
}

func (r *SQLClientRepository) Add(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, name, email, document, street, number, complement,
		                     city, state, zip_code, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	a := client.Address
	_, err := r.db.ExecContext(ctx, query,
		client.ID.String(), client.Name, client.Email, client.Document,
		a.Street, a.Number, a.Complement, a.City, a.State, a.ZipCode,
		client.CreatedAt, client.UpdatedAt,
	)
	if database.IsDuplicateKey(err) {
		return errors.NewConflictError(fmt.Sprintf("client with id %s already exists", client.ID))
	}
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}

	return nil
}

func (r *SQLClientRepository) Find(ctx context.Context, id string) (*domain.Client, error) {
	query := `
		SELECT id, name, email, document, street, number, complement,
		       city, state, zip_code, created_at, updated_at
		FROM clients
		WHERE id = ?
	`

	var c domain.Client
	var clientID string
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&clientID, &c.Name, &c.Email, &c.Document,
		&c.Address.Street, &c.Address.Number, &c.Address.Complement,
		&c.Address.City, &c.Address.State, &c.Address.ZipCode,
		&c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewClientNotFoundError()
	}
	if err != nil {
		return nil, fmt.Errorf("querying client by id: %w", err)
	}

	c.ID = domain.ID(clientID)
	return &c, nil
}
