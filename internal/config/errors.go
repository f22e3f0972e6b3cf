package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidUIConfigs indicates invalid terminal UI settings
	// (for example, an input width outside 10..120).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
