package conftree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// maxNestingDepth bounds how deep a document may nest before loading is
// aborted with a ParseError. Configuration files in the wild are a handful
// of levels deep; anything approaching this limit is either hostile input
// or an alias cycle the decoder failed to reject.
const maxNestingDepth = 10000

// Load reads the file at path and parses it into a Node according to format.
//
// Error cases, all typed for errors.As:
//   - *NotFoundError: the file does not exist
//   - *UnsupportedFormatError: format is not yaml or json
//   - *ParseError: the content does not parse as the declared format
func Load(path string, format Format) (*Node, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	switch format {
	case FormatYAML:
		return parseYAML(path, data)
	case FormatJSON:
		return parseJSON(path, data)
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
}
