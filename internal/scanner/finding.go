package scanner

import "encoding/json"

// Finding records one occurrence of a deprecated feature key in a
// configuration document.
type Finding struct {
	// Feature is the mapping key that matched the deprecation table.
	Feature string `json:"feature"`

	// Path locates the key within the document: dotted for mapping
	// descent (a.b), bracketed indices for sequence descent (a[2]),
	// concatenated from the root (a.b[1].c).
	Path string `json:"path"`

	// Info is the table's metadata for the feature, verbatim.
	Info json.RawMessage `json:"info"`
}
