package config

import "errors"

// Validation errors returned by GetStructuredConfig.
var (
	// ErrInvalidAppConfigs is returned when the token signing key, issuer,
	// duration or cookie name is missing.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when no database DSN is set or the
	// pool sizes are negative.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the listen address, request
	// timeout or rate limit is unusable.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
