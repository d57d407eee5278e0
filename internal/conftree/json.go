package conftree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// parseJSON decodes data through the token stream rather than into
// map[string]any, so object key order survives. Numbers come through as
// json.Number to avoid float64 rounding of large integers.
func parseJSON(path string, data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: errors.New("empty document")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	node, err := fromJSONToken(dec, tok, 0)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("trailing data after document")}
	}
	return node, nil
}

func fromJSONToken(dec *json.Decoder, tok json.Token, depth int) (*Node, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("document nesting exceeds %d levels", maxNestingDepth)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool or nil
		return Scalar(tok), nil
	}

	switch delim {
	case '{':
		n := &Node{Kind: KindMapping}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string: %v", keyTok)
			}
			valTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			value, err := fromJSONToken(dec, valTok, depth+1)
			if err != nil {
				return nil, err
			}
			n.setEntry(key, value)
		}
		// Consume the closing '}'.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil

	case '[':
		n := &Node{Kind: KindSequence}
		for dec.More() {
			itemTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			item, err := fromJSONToken(dec, itemTok, depth+1)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, item)
		}
		// Consume the closing ']'.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}
