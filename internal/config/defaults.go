package config

import "time"

// Development fallbacks for the secret values. Startup logs a warning when
// any of them survives into the final config.
const (
	DevTokenSignKey = "dev-only-token-sign-key"
	DevCSRFKey      = "dev-only-csrf-key"

	// DefaultAdminPassword is the initial password of the provisioned
	// default admin account. Provisioning warns that it must be rotated.
	DefaultAdminPassword = "admin123"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  DevTokenSignKey,
			TokenIssuer:   "landing-intake",
			TokenDuration: 12 * time.Hour,
			CSRFKey:       DevCSRFKey,
			AdminUsername: "admin",
			AdminPassword: DefaultAdminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: "database.db",
			},
			Files: Files{
				UploadDir: "static/uploads",
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
		Limits: Limits{
			GlobalPerMinute: 100,
			SubmitPerMinute: 10,
		},
	}
}
