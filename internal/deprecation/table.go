// Package deprecation loads the table of known-deprecated feature keys.
//
// The table file is a JSON object whose top-level keys are feature names and
// whose values are arbitrary metadata (typically a description and a
// replacement suggestion). Values are carried through verbatim as raw JSON
// and never interpreted here.
package deprecation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/moolen/deprscan/internal/conftree"
)

// Table maps a deprecated feature key to its opaque metadata.
// Immutable after load; the scanner only performs lookups.
type Table map[string]json.RawMessage

// Has reports whether key is a known deprecated feature.
func (t Table) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// LoadTable reads the deprecated-features file at path.
//
// The file format is fixed to JSON, so the error taxonomy is restricted to
// *conftree.NotFoundError and *conftree.ParseError. A root that is not a
// JSON object is rejected as a parse error: an array or scalar root means
// the file is not a feature table, and treating it as an empty table would
// silently mask the mistake.
func LoadTable(path string) (Table, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &conftree.NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &conftree.ParseError{
				Path: path,
				Err:  fmt.Errorf("deprecation table root must be a JSON object, got %s", typeErr.Value),
			}
		}
		return nil, &conftree.ParseError{Path: path, Err: err}
	}

	if table == nil {
		return nil, &conftree.ParseError{Path: path, Err: errors.New("deprecation table root must be a JSON object, got null")}
	}
	return table, nil
}
