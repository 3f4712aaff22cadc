package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rmachado/landing-intake/internal/logger"
	"github.com/rmachado/landing-intake/internal/store"
	"github.com/rmachado/landing-intake/models"
)

// EnsureDefaultAdmin seeds the configured default operator account if and
// only if zero admin accounts exist. Subsequent calls are no-ops, so the
// method is safe to run on every process start as part of provisioning.
//
// A concurrent seeder losing the unique-username race is treated as
// success: the account exists, which is all that matters here.
func (a *adminService) EnsureDefaultAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	count, err := a.admins.Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting admin accounts: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing default admin password: %w", err)
	}

	created, err := a.admins.Create(ctx, models.AdminUser{
		Username:     a.defaultUsername,
		PasswordHash: string(hash),
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating default admin account: %w", err)
	}

	log.Warn().
		Str("username", created.Username).
		Msg("default admin account created with the initial password, rotate it immediately")

	return nil
}
