package conftree

import "strings"

// Format identifies a supported configuration file format.
type Format string

const (
	// FormatYAML selects the YAML loader.
	FormatYAML Format = "yaml"
	// FormatJSON selects the JSON loader.
	FormatJSON Format = "json"
)

// ParseFormat normalizes a user-supplied format string.
// Returns an UnsupportedFormatError for anything outside {yaml, json}.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", &UnsupportedFormatError{Format: s}
	}
}
