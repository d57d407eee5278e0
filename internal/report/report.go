// Package report renders scan findings and maps them to process exit status.
package report

import (
	"github.com/moolen/deprscan/internal/scanner"
)

// Status is the outcome of one scan pass. Its integer value is the process
// exit code contract: 0 clean, 1 load failure, 2 deprecations found.
type Status int

const (
	// StatusClean means the scan ran and found nothing.
	StatusClean Status = 0
	// StatusLoadFailure means an input file was missing, of an
	// unsupported format, or failed to parse; the scan never ran.
	StatusLoadFailure Status = 1
	// StatusDeprecationsFound means the scan ran and reported findings.
	StatusDeprecationsFound Status = 2
)

// ExitCode returns the process exit code for the status.
func (s Status) ExitCode() int {
	return int(s)
}

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusLoadFailure:
		return "load failure"
	case StatusDeprecationsFound:
		return "deprecations found"
	default:
		return "unknown"
	}
}

// Summarize maps a completed scan's findings to a status.
// Load failures never reach this point; callers return StatusLoadFailure
// before the scan runs.
func Summarize(findings []scanner.Finding) Status {
	if len(findings) == 0 {
		return StatusClean
	}
	return StatusDeprecationsFound
}

// Reporter renders the findings of one scan pass.
type Reporter interface {
	Report(findings []scanner.Finding) error
}
