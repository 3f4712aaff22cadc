// Package store implements the persistence layer of the application:
// the SQLite-backed repositories for form responses and admin accounts,
// and the file-system storage for uploaded images.
package store

import (
	"database/sql"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/migrations"
)

// DB wraps the shared *sql.DB handle together with the application logger.
// All repositories operate through this type.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all embedded goose migrations. Called once at startup
// before any request is served; a failure here is fatal.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
