package config

import (
	"flag"
	"fmt"
)

// parseFlags parses configuration flags from args (without the program name).
//
// Flags:
//
//	-log-level   minimum log level (trace, debug, info, warn, error)
//	-log-file    log file path
//	-alt-screen  run in the terminal alternate screen
//	-input-width width of the text inputs
//	-c/-config   JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var logLevel, logFile, configPath string
	var altScreen bool
	var inputWidth int

	fs := flag.NewFlagSet("signup-client", flag.ContinueOnError)
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&altScreen, "alt-screen", false, "Use the terminal alternate screen")
	fs.IntVar(&inputWidth, "input-width", 0, "Width of the text inputs")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		UI: UI{
			AltScreen:  altScreen,
			InputWidth: inputWidth,
		},
		ConfigFilePath: configPath,
	}, nil
}
