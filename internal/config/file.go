package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfigFormat is returned for config files whose extension is
// neither .json, .yaml nor .yml.
var ErrUnsupportedConfigFormat = errors.New("unsupported config file format")

// fileConfig mirrors StructuredConfig for JSON and YAML decoding.
type fileConfig struct {
	App struct {
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	UI struct {
		AltScreen  bool `json:"alt_screen" yaml:"alt_screen"`
		InputWidth int  `json:"input_width" yaml:"input_width"`
	} `json:"ui,omitempty" yaml:"ui,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, path)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: fileCfg.App.LogLevel,
			LogFile:  fileCfg.App.LogFile,
		},
		UI: UI{
			AltScreen:  fileCfg.UI.AltScreen,
			InputWidth: fileCfg.UI.InputWidth,
		},
	}, nil
}
