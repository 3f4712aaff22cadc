package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN or upload directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or CSRF key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidLimitConfigs indicates inconsistent rate limit quotas
	// (the submission quota must not exceed the global quota).
	ErrInvalidLimitConfigs = errors.New("invalid rate limit configuration")
)
