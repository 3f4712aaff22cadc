package store

import (
	"context"
	"io"

	"github.com/rmachado/landing-intake/models"
)

// ResponseRepository persists and reads back form submissions.
// Responses are insert-only: no update or delete operations exist.
type ResponseRepository interface {
	// Create inserts one response row atomically and returns the stored
	// record with its server-assigned ID and creation timestamp.
	Create(ctx context.Context, response models.Response) (models.Response, error)

	// FindByID returns the response with the given identifier, or
	// ErrNoResponseWasFound if it does not exist.
	FindByID(ctx context.Context, id int64) (models.Response, error)

	// Search returns one page of responses matching the optional query,
	// ordered by creation timestamp descending, plus the total number of
	// matching rows. An empty query matches everything. The query is a
	// case-insensitive substring match over first name, last name, email,
	// city, and employer.
	Search(ctx context.Context, query string, limit, offset int) ([]models.Response, int, error)
}

// AdminUserRepository manages operator credential records.
type AdminUserRepository interface {
	// Create inserts a new admin account and returns it with its
	// server-assigned fields. Returns ErrUsernameAlreadyExists when the
	// username is taken.
	Create(ctx context.Context, admin models.AdminUser) (models.AdminUser, error)

	// FindByUsername returns the account with the given username, or
	// ErrNoAdminWasFound if it does not exist.
	FindByUsername(ctx context.Context, username string) (models.AdminUser, error)

	// Count returns the total number of admin accounts. Used by schema
	// provisioning to decide whether the default account must be seeded.
	Count(ctx context.Context) (int, error)

	// UpdateLastLogin bumps the account's last_login timestamp to now.
	// The only mutation the system ever applies to an admin account.
	UpdateLastLogin(ctx context.Context, id int64) error
}

// ImageStorage persists uploaded image files outside the database.
// The database row only holds the returned relative reference path.
type ImageStorage interface {
	// Save writes content under a collision-proof name derived from the
	// sanitized original filename and returns the relative path to store
	// on the response row.
	Save(ctx context.Context, originalFilename string, content io.Reader) (string, error)
}
