package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// LoadSettingsFile loads and validates a settings file using Koanf.
// Values not present in the file keep their defaults.
//
// Error cases:
//   - File not found or cannot be read
//   - Invalid YAML syntax
//   - Validation failure (unknown log level or output format)
func LoadSettingsFile(filepath string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(filepath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load settings from %q: %w", filepath, err)
	}

	settings := DefaultSettings()
	if err := k.UnmarshalWithConf("", &settings, koanf.UnmarshalConf{Tag: "yaml"}); err != nil {
		return nil, fmt.Errorf("failed to parse settings from %q: %w", filepath, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings validation failed for %q: %w", filepath, err)
	}

	return &settings, nil
}
