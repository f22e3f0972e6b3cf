// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-signup-form client. It is populated by merging values from defaults,
// environment variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// UI holds terminal presentation settings.
	UI UI `envPrefix:"UI_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file, chosen by extension (.json, .yaml, .yml).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is the minimum zerolog level written to the log
	// (trace, debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is the path of the log file. Empty means "logs" next to the
	// executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// UI holds settings of the terminal signup form.
type UI struct {
	// AltScreen runs the form in the terminal's alternate screen buffer.
	// Env: UI_ALT_SCREEN
	AltScreen bool `env:"ALT_SCREEN"`

	// InputWidth is the visible width of each text input, in cells.
	// Env: UI_INPUT_WIDTH
	InputWidth int `env:"INPUT_WIDTH"`
}

// Default values applied before any other source.
const (
	DefaultLogLevel   = "info"
	DefaultInputWidth = 40
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		UI:  UI{InputWidth: DefaultInputWidth},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources, reading flags from args.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
