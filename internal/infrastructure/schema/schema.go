// Package schema holds the table definitions shared by every repository. The
// statements stick to the subset of DDL understood by both MySQL and SQLite.
package schema

import (
	"context"
	"database/sql"
	"fmt"
)

type Table struct {
	Name string
	DDL  string
}

var Tables = []Table{
	{"clients", `
	CREATE TABLE IF NOT EXISTS clients (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		document VARCHAR(64) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(32) NOT NULL,
		complement VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL,
		state VARCHAR(64) NOT NULL,
		zip_code VARCHAR(32) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`},
	{"products", `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		purchase_price DECIMAL(10,2) NOT NULL,
		stock INT NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`},
	{"catalog_products", `
	CREATE TABLE IF NOT EXISTS catalog_products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		sales_price DECIMAL(10,2) NOT NULL
	)`},
	{"transactions", `
	CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		order_id VARCHAR(36) NOT NULL,
		amount DECIMAL(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`},
	{"invoices", `
	CREATE TABLE IF NOT EXISTS invoices (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		document VARCHAR(64) NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(32) NOT NULL,
		complement VARCHAR(255) NOT NULL DEFAULT '',
		city VARCHAR(128) NOT NULL,
		state VARCHAR(64) NOT NULL,
		zip_code VARCHAR(32) NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`},
	{"invoice_items", `
	CREATE TABLE IF NOT EXISTS invoice_items (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		invoice_id VARCHAR(36) NOT NULL,
		product_id VARCHAR(36) NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		line_number INT NOT NULL
	)`},
	{"orders", `
	CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		client_id VARCHAR(36) NOT NULL,
		status VARCHAR(32) NOT NULL
	)`},
	{"order_products", `
	CREATE TABLE IF NOT EXISTS order_products (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		order_id VARCHAR(36) NOT NULL,
		product_id VARCHAR(36) NOT NULL,
		line_number INT NOT NULL
	)`},
}

func Create(ctx context.Context, db *sql.DB) error {
	for _, tbl := range Tables {
		if _, err := db.ExecContext(ctx, tbl.DDL); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.Name, err)
		}
	}
	return nil
}

// Truncate removes every row, children first.
func Truncate(ctx context.Context, db *sql.DB) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+Tables[i].Name); err != nil {
			return fmt.Errorf("cleaning table %s: %w", Tables[i].Name, err)
		}
	}
	return nil
}
