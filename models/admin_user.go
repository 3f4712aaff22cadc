package models

import (
	"database/sql"
	"time"
)

// AdminUser represents an operator credential record for the admin panel.
// There is no self-service registration: accounts are created by schema
// provisioning (the seeded default account) or by operators with direct
// database access.
type AdminUser struct {
	// ID is the internal unique identifier of the account.
	ID int64 `json:"-"`

	// Username is the unique login name of the operator.
	// Uniqueness is enforced by the storage layer.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the operator's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// IsActive reports whether the account may authenticate.
	// Inactive accounts are rejected with the same generic error as
	// unknown usernames to avoid account enumeration.
	IsActive bool `json:"-"`

	// CreatedAt is the timestamp the account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastLogin is the timestamp of the most recent successful login.
	// Null until the account logs in for the first time.
	LastLogin sql.NullTime `json:"-"`
}

// TableName returns the name of the database table
// associated with the AdminUser model.
func (u AdminUser) TableName() string {
	return "admin_users"
}
