package logging

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects the log package's output for the duration of f.
func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(old)
	f()
	return buf.String()
}

func TestLoggerLevelFiltering(t *testing.T) {
	require.NoError(t, Initialize("warn"))
	t.Cleanup(func() { _ = Initialize("info") })

	logger := GetLogger("test")

	out := captureStdout(t, func() {
		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warn message")
	})

	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
}

func TestLoggerStructuredFields(t *testing.T) {
	require.NoError(t, Initialize("info"))

	logger := GetLogger("test").WithField("component", "scan")

	out := captureStdout(t, func() {
		logger.InfoWithFields("done", Field("count", 3))
	})

	assert.Contains(t, out, "component=scan")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "[INFO] test: done")
}

func TestLoggerWithFieldIsImmutable(t *testing.T) {
	require.NoError(t, Initialize("info"))

	base := GetLogger("test")
	derived := base.WithField("k", "v")

	out := captureStdout(t, func() {
		base.Info("plain")
	})

	assert.NotContains(t, out, "k=v")
	assert.NotNil(t, derived)
}

func TestLoggerTimestampOverride(t *testing.T) {
	t.Setenv("LOG_TIMESTAMP", "2024-01-01T00:00:00Z")

	assert.Equal(t, "2024-01-01T00:00:00Z", GetTimestamp())
}

func TestPackageLogLevels(t *testing.T) {
	require.NoError(t, SetPackageLogLevels(map[string]string{
		"scanner":    "debug",
		"conftree.*": "error",
	}))
	t.Cleanup(func() { _ = SetPackageLogLevels(map[string]string{}) })

	assert.Equal(t, DEBUG, GetPackageLogLevel("scanner"))
	assert.Equal(t, ERROR, GetPackageLogLevel("conftree.yaml"))
	assert.Equal(t, LogLevel(-1), GetPackageLogLevel("report"))
}

func TestPackageLogLevelsInvalidLevel(t *testing.T) {
	err := SetPackageLogLevels(map[string]string{"scanner": "loud"})

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid"))
}
