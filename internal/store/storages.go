package store

import (
	"context"
	"fmt"

	"github.com/rmachado/landing-intake/internal/config"
	"github.com/rmachado/landing-intake/internal/logger"
)

// Storages bundles every persistence backend the application uses: the
// shared database handle, the two repositories, and the image file store.
type Storages struct {
	DB                  *DB
	ResponseRepository  ResponseRepository
	AdminUserRepository AdminUserRepository
	ImageStorage        ImageStorage
}

// NewStorages connects to the SQLite database, applies all pending schema
// migrations, and wires up the repositories and the image storage.
//
// Migration runs before anything else is constructed: the process must not
// accept traffic with an unverified schema, so any error here is returned
// to main and treated as fatal.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database schema: %w", err)
	}

	images, err := NewImageStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating image storage: %w", err)
	}

	return &Storages{
		DB:                  db,
		ResponseRepository:  NewResponseRepository(db, logger),
		AdminUserRepository: NewAdminUserRepository(db, logger),
		ImageStorage:        images,
	}, nil
}
