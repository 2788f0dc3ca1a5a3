package config

import "errors"

// Validation errors returned by [ServerConfig.validate] when the merged
// configuration is unusable.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLogConfigs indicates a log level zerolog does not know.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidSettingsConfigs indicates invalid settings layer options
	// (for example, an empty scope).
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
)
