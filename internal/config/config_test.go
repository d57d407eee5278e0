package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:   "json output is valid",
			mutate: func(s *Settings) { s.Output = "json" },
		},
		{
			name:    "unknown log level",
			mutate:  func(s *Settings) { s.LogLevel = "loud" },
			wantErr: true,
			errMsg:  "log_level",
		},
		{
			name:    "unknown output format",
			mutate:  func(s *Settings) { s.Output = "xml" },
			wantErr: true,
			errMsg:  "output",
		},
		{
			name:    "negative debounce",
			mutate:  func(s *Settings) { s.DebounceMillis = -1 },
			wantErr: true,
			errMsg:  "debounce_millis",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level: debug
output: json
`), 0o600))

	settings, err := LoadSettingsFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", settings.LogLevel)
	assert.Equal(t, "json", settings.Output)
	// Unset values keep their defaults.
	assert.Equal(t, 500, settings.DebounceMillis)
}

func TestLoadSettingsFileMissing(t *testing.T) {
	_, err := LoadSettingsFile(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadSettingsFileInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o600))

	_, err := LoadSettingsFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
