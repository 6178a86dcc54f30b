package testutil

import (
	"context"
	"database/sql"
	"testing"

	"storefront/internal/config"
	"storefront/internal/infrastructure/schema"
	"storefront/internal/infrastructure/sqlite"
)

// SetupTestDB opens a private in-memory SQLite database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.NewConnection(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Name:   ":memory:",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	return db
}

// SetupTestTables creates every table used by the repositories.
func SetupTestTables(t *testing.T, db *sql.DB) {
	t.Helper()

	if err := schema.Create(context.Background(), db); err != nil {
		t.Fatalf("failed to create tables: %v", err)
	}
}

// CleanupTestDB empties the tables and closes the database.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if err := schema.Truncate(context.Background(), db); err != nil {
		t.Logf("failed to clean tables: %v", err)
	}

	db.Close()
}

// SeedClient inserts a client row with a fixed address.
func SeedClient(t *testing.T, db *sql.DB, id, name string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO clients (id, name, email, document, street, number, complement, city, state, zip_code, created_at, updated_at)
		VALUES (?, ?, 'x@x.com', '123', 'Street 1', '123', 'Complement 1', 'City 1', 'State 1', '123', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, id, name)
	if err != nil {
		t.Fatalf("failed to seed client %s: %v", id, err)
	}
}

// SeedCatalogProduct inserts a catalog row.
func SeedCatalogProduct(t *testing.T, db *sql.DB, id, name string, salesPrice float64) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO catalog_products (id, name, description, sales_price)
		VALUES (?, ?, ?, ?)
	`, id, name, "Description of "+name, salesPrice)
	if err != nil {
		t.Fatalf("failed to seed catalog product %s: %v", id, err)
	}
}

// SeedInventoryProduct inserts a product administration row.
func SeedInventoryProduct(t *testing.T, db *sql.DB, id, name string, stock int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO products (id, name, description, purchase_price, stock, created_at, updated_at)
		VALUES (?, ?, ?, 100, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`, id, name, "Description of "+name, stock)
	if err != nil {
		t.Fatalf("failed to seed product %s: %v", id, err)
	}
}
