package service

import "errors"

// Sentinel errors returned by the intake and admin services. The HTTP layer
// matches them with errors.Is to produce structured responses.
var (
	// ErrMissingRequiredFields indicates that first name, last name,
	// email, or the WhatsApp phone is empty after sanitization.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrInvalidEmail indicates the email does not match the permissive
	// local@domain.tld shape.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPhone indicates the WhatsApp phone is not exactly 11
	// ASCII digits.
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrDisallowedFileType indicates the uploaded image has no filename
	// or an extension outside the png/jpg/jpeg/gif allow-list.
	ErrDisallowedFileType = errors.New("disallowed file type")

	// ErrPersistenceFailed indicates the storage engine rejected an
	// otherwise valid submission. The detail is logged server-side; the
	// caller only sees a generic failure.
	ErrPersistenceFailed = errors.New("persistence failed")

	// ErrInvalidCredentials is the single, deliberately generic
	// authentication failure: unknown username, inactive account, and
	// password mismatch are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenIsExpiredOrInvalid indicates a session token failed
	// validation for any reason (expired, wrong issuer, malformed).
	ErrTokenIsExpiredOrInvalid = errors.New("session token is expired or invalid")
)
