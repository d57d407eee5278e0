package report

import (
	"encoding/json"
	"io"

	"github.com/moolen/deprscan/internal/scanner"
)

// jsonReport is the machine-readable output document.
type jsonReport struct {
	Findings []scanner.Finding `json:"findings"`
	Count    int               `json:"count"`
}

// JSONReporter writes all findings as a single JSON document, for
// consumption by other tooling. Log lines stay on their usual streams;
// the document goes to Out only.
type JSONReporter struct {
	Out io.Writer
}

// NewJSONReporter returns a JSON reporter writing to out.
func NewJSONReporter(out io.Writer) *JSONReporter {
	return &JSONReporter{Out: out}
}

// Report encodes findings as {"findings": [...], "count": N}.
func (r *JSONReporter) Report(findings []scanner.Finding) error {
	if findings == nil {
		findings = []scanner.Finding{}
	}
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{Findings: findings, Count: len(findings)})
}
