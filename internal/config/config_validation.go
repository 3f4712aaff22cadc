package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The defaults source guarantees most fields are non-zero, so failures here
// mean an operator explicitly blanked a required value.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.Files.UploadDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.CSRFKey == "" || cfg.App.AdminUsername == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Limits.GlobalPerMinute < cfg.Limits.SubmitPerMinute {
		return ErrInvalidLimitConfigs
	}

	return nil
}

// UsesDevSecrets reports whether any of the secret values still carries its
// built-in development fallback. Startup logs a warning when this is true.
func (cfg *StructuredConfig) UsesDevSecrets() bool {
	return cfg.App.TokenSignKey == DevTokenSignKey || cfg.App.CSRFKey == DevCSRFKey
}
