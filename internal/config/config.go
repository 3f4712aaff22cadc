package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// landing-intake application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session-token
	// parameters, the CSRF signing key, and the default admin credential
	// used by schema provisioning.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the
	// SQLite database file and the image upload directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Limits holds per-client-address rate limiting quotas.
	Limits Limits `envPrefix:"LIMITS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the admin
// session lifecycle, CSRF protection, and the provisioned default account.
type App struct {
	// TokenSignKey is the secret key used to sign and verify admin
	// session JWT tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token. It is validated on every authenticated admin request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an admin session remains valid
	// after login (e.g. "12h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CSRFKey is the HMAC key used to sign and verify the CSRF tokens
	// issued with the public form and the admin login page.
	// Env: APP_CSRF_KEY
	CSRFKey string `env:"CSRF_KEY"`

	// AdminUsername is the username of the default account seeded by
	// schema provisioning when no admin account exists yet.
	// Env: APP_ADMIN_USERNAME
	AdminUsername string `env:"ADMIN_USERNAME"`

	// AdminPassword is the initial password of the seeded default
	// account. Provisioning logs a warning urging rotation whenever the
	// account is created with this value.
	// Env: APP_ADMIN_PASSWORD
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploaded images.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the SQLite data source name: the path of the database file
	// (e.g. "database.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the uploaded-image store.
type Files struct {
	// UploadDir is the directory where uploaded images are written.
	// Stored image references in the database are relative to this
	// directory's parent, matching the public static file layout.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Limits holds the per-client-address request quotas enforced by the HTTP
// layer. Quotas are windows of one minute; requests over the quota are
// rejected with 429, not queued.
type Limits struct {
	// GlobalPerMinute bounds all requests from one client address.
	// Env: LIMITS_GLOBAL_PER_MINUTE
	GlobalPerMinute int `env:"GLOBAL_PER_MINUTE"`

	// SubmitPerMinute bounds form submissions from one client address.
	// Always tighter than GlobalPerMinute.
	// Env: LIMITS_SUBMIT_PER_MINUTE
	SubmitPerMinute int `env:"SUBMIT_PER_MINUTE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
