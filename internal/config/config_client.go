package config

import (
	"fmt"
	"os"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogLevel is the minimum level written to the log file.
	LogLevel string `validate:"required,oneof=trace debug info warn error"`
	// LogFile is the log file path; empty selects the default location.
	LogFile string
}

// ClientUI holds terminal form settings.
type ClientUI struct {
	// AltScreen runs the form in the alternate screen buffer.
	AltScreen bool
	// InputWidth is the visible width of each text input.
	InputWidth int `validate:"min=10,max=120"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// UI contains terminal form settings.
	UI ClientUI
}

// GetClientConfig builds and validates the client configuration from
// defaults, the environment, os.Args and an optional config file.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		UI: ClientUI{
			AltScreen:  cfg.UI.AltScreen,
			InputWidth: cfg.UI.InputWidth,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
