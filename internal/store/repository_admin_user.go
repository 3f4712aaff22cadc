package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/models"
)

// adminUserRepository is the SQLite-backed implementation of
// [AdminUserRepository]. It handles operator account creation and lookup
// against the "admin_users" table.
type adminUserRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAdminUserRepository constructs an [AdminUserRepository] backed by the
// provided database connection and logger.
func NewAdminUserRepository(db *DB, logger *logger.Logger) AdminUserRepository {
	logger.Debug().Msg("creating admin user repository")
	return &adminUserRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new admin account and returns the fully populated
// [models.AdminUser] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - SQLite unique violation on username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminUserRepository) Create(ctx context.Context, admin models.AdminUser) (models.AdminUser, error) {
	log := logger.FromContext(ctx)

	admin.CreatedAt = time.Now().UTC()

	result, err := r.db.ExecContext(ctx, insertAdminUser,
		admin.Username,
		admin.PasswordHash,
		admin.IsActive,
		admin.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*adminUserRepository.Create").Msg("error: insert failed")

		if isSQLiteConstraint(err, sqlite3.ErrConstraintUnique) {
			return models.AdminUser{}, ErrUsernameAlreadyExists
		}
		return models.AdminUser{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*adminUserRepository.Create").Msg("error: reading inserted id")
		return models.AdminUser{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	admin.ID = id
	return admin, nil
}

// FindByUsername retrieves an admin account by its unique username.
//
// Error handling:
//   - No matching row → [ErrNoAdminWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	log := logger.FromContext(ctx)

	var found models.AdminUser
	row := r.db.QueryRowContext(ctx, getAdminUserByUsername, username)

	err := row.Scan(
		&found.ID,
		&found.Username,
		&found.PasswordHash,
		&found.IsActive,
		&found.CreatedAt,
		&found.LastLogin,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AdminUser{}, ErrNoAdminWasFound
		}

		log.Err(err).Str("func", "*adminUserRepository.FindByUsername").Msg("error: scanning error")
		return models.AdminUser{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Count returns the total number of admin accounts.
func (r *adminUserRepository) Count(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countAdminUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*adminUserRepository.Count").Msg("error: counting accounts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// UpdateLastLogin stamps the account's last_login column with the current
// time. Called after every successful authentication.
func (r *adminUserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateAdminLastLogin, time.Now().UTC(), id); err != nil {
		log.Err(err).Str("func", "*adminUserRepository.UpdateLastLogin").Msg("error: update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
