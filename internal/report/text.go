package report

import (
	"strings"

	"github.com/moolen/deprscan/internal/logging"
	"github.com/moolen/deprscan/internal/scanner"
)

// TextReporter emits one WARN block per finding through the logging
// package, separated by dashed lines, and an INFO summary when clean.
type TextReporter struct {
	logger *logging.Logger
}

// NewTextReporter returns a text reporter writing through the given logger.
// A nil logger uses the package default.
func NewTextReporter(logger *logging.Logger) *TextReporter {
	if logger == nil {
		logger = logging.GetLogger("report")
	}
	return &TextReporter{logger: logger}
}

// Report renders findings as human-readable log blocks.
func (r *TextReporter) Report(findings []scanner.Finding) error {
	if len(findings) == 0 {
		r.logger.Info("No deprecated features found in the configuration file.")
		return nil
	}

	r.logger.Warn("Deprecated features found in the configuration file:")
	for _, f := range findings {
		r.logger.Warn("  Feature: %s", f.Feature)
		r.logger.Warn("  Path: %s", f.Path)
		r.logger.Warn("  Details: %s", string(f.Info))
		r.logger.Warn(strings.Repeat("-", 30))
	}
	return nil
}
