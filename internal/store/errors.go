package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// Sentinel errors returned by the repositories. Callers match them with
// errors.Is to translate storage outcomes into service-level results.
var (
	// ErrUsernameAlreadyExists indicates a violation of the admin_users
	// username uniqueness constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoAdminWasFound indicates that no admin account matches the
	// requested username.
	ErrNoAdminWasFound = errors.New("no admin account was found")

	// ErrNoResponseWasFound indicates that no response row matches the
	// requested identifier.
	ErrNoResponseWasFound = errors.New("no response was found")

	// ErrEmailConstraintViolated indicates the responses email_format
	// CHECK constraint rejected the value. Normally unreachable because
	// intake validation runs first; kept distinct for diagnostics.
	ErrEmailConstraintViolated = errors.New("email rejected by schema constraint")
)

// isSQLiteConstraint reports whether err is a SQLite constraint violation
// of the given extended code (e.g. sqlite3.ErrConstraintUnique).
func isSQLiteConstraint(err error, code sqlite3.ErrNoExtended) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == code
}
