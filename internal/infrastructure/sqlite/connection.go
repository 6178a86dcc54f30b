package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"storefront/internal/config"
)

const DriverName = "sqlite"

// NewConnection opens the database named by cfg.Name, which may be a file path
// or ":memory:". In-memory databases are private to a connection, so the pool
// is pinned to a single one.
func NewConnection(cfg config.DatabaseConfig) (*sql.DB, error) {
	name := cfg.Name
	if name == "" {
		name = ":memory:"
	}

	db, err := sql.Open(DriverName, name)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if name == ":memory:" || strings.Contains(name, "mode=memory") {
		db.SetMaxOpenConns(1)
	} else if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// IsConstraintViolation reports whether err came from a UNIQUE or PRIMARY KEY
// constraint.
func IsConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}

// IsBusy reports SQLITE_BUSY, raised when another writer holds the lock.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
