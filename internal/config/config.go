// Package config holds deprscan's own tool settings, optionally loaded
// from a YAML settings file. This is configuration *of* the scanner, not
// the configuration documents it scans.
package config

import "fmt"

// Settings holds all tool-level configuration.
type Settings struct {
	// LogLevel is the default logging level (debug, info, warn, error, fatal)
	LogLevel string `yaml:"log_level"`

	// Output selects the report format: text or json
	Output string `yaml:"output"`

	// DebounceMillis is the watch-mode debounce period in milliseconds.
	// Multiple file change events within this period trigger one rescan.
	DebounceMillis int `yaml:"debounce_millis"`
}

// DefaultSettings returns the settings used when no settings file is given.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:       "info",
		Output:         "text",
		DebounceMillis: 500,
	}
}

// Validate checks that the settings are valid.
func (s *Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return NewConfigError(fmt.Sprintf("log_level must be one of debug, info, warn, error, fatal; got %q", s.LogLevel))
	}

	switch s.Output {
	case "text", "json":
	default:
		return NewConfigError(fmt.Sprintf("output must be text or json; got %q", s.Output))
	}

	if s.DebounceMillis < 0 {
		return NewConfigError("debounce_millis must not be negative")
	}

	return nil
}

// ConfigError represents a tool settings error
type ConfigError struct {
	message string
}

// NewConfigError creates a new settings error
func NewConfigError(message string) *ConfigError {
	return &ConfigError{message: message}
}

// Error returns the error message
func (e *ConfigError) Error() string {
	return e.message
}
