package database

import (
	"database/sql"
	"fmt"

	"storefront/internal/config"
	"storefront/internal/infrastructure/mysql"
	"storefront/internal/infrastructure/sqlite"
)

func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL, "":
		return mysql.NewConnection(cfg)
	case config.DriverSQLite:
		return sqlite.NewConnection(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// IsDuplicateKey reports a primary or unique key violation for either driver.
func IsDuplicateKey(err error) bool {
	return mysql.IsDuplicateEntry(err) || sqlite.IsConstraintViolation(err)
}

// IsRetryable reports lock contention errors after which the whole
// transaction can be attempted again.
func IsRetryable(err error) bool {
	return mysql.IsDeadlock(err) || sqlite.IsBusy(err)
}
