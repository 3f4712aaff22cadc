package service

import (
	"context"

	"github.com/rmachado/landing-intake/models"
)

// IntakeService is the form-submission pipeline: sanitize, validate, store
// the optional image, insert one row.
type IntakeService interface {
	// Submit processes one submission. image may be nil when no file was
	// attached. clientIP is recorded on the stored row; it is assigned by
	// the server, never taken from the form body.
	//
	// Validation is ordered and fails fast on the first violation:
	// required fields, email shape, phone shape, image extension.
	// Returns the persisted response (with ID and CreatedAt) on success.
	Submit(ctx context.Context, submission models.Submission, image *models.UploadedImage, clientIP string) (models.Response, error)
}

// AdminService authenticates operators and exposes read-only access to
// persisted responses. Every query method performs its own capability
// check: a caller without an authenticated admin identity in ctx is
// rejected with ErrInvalidCredentials.
type AdminService interface {
	// Authenticate verifies an operator credential pair. Unknown
	// username, inactive account, and wrong password all produce
	// ErrInvalidCredentials. On success the account's last-login
	// timestamp is bumped and a signed session token is issued.
	Authenticate(ctx context.Context, username, password string) (models.Token, error)

	// ParseToken validates a raw session token string and returns the
	// decoded token, or ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Search returns one page of responses, optionally filtered by a
	// case-insensitive substring query. The only error it returns is
	// ErrInvalidCredentials for callers without an admin identity;
	// storage failures degrade to an empty page so the dashboard always
	// renders, with the error logged server-side only.
	Search(ctx context.Context, query string, page int) (models.Page, error)

	// GetByID returns a single response by identifier. A missing row is
	// store.ErrNoResponseWasFound, a normal outcome rather than a fault.
	GetByID(ctx context.Context, id int64) (models.Response, error)

	// EnsureDefaultAdmin seeds the default operator account if and only
	// if no admin account exists yet. Idempotent; called once at startup
	// as part of schema provisioning.
	EnsureDefaultAdmin(ctx context.Context) error
}
