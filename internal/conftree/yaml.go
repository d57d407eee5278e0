package conftree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes data through yaml.v3's node representation so mapping
// key order survives. Decoding straight into map[string]any would shuffle
// keys and break document-order traversal.
func parseYAML(path string, data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	node, err := fromYAMLNode(&doc, 0)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return node, nil
}

func fromYAMLNode(yn *yaml.Node, depth int) (*Node, error) {
	if depth > maxNestingDepth {
		return nil, fmt.Errorf("document nesting exceeds %d levels", maxNestingDepth)
	}

	switch yn.Kind {
	case 0:
		// Empty document.
		return Scalar(nil), nil

	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return Scalar(nil), nil
		}
		return fromYAMLNode(yn.Content[0], depth)

	case yaml.AliasNode:
		// The depth guard also terminates alias cycles the decoder let through.
		return fromYAMLNode(yn.Alias, depth+1)

	case yaml.MappingNode:
		n := &Node{Kind: KindMapping}
		for i := 0; i+1 < len(yn.Content); i += 2 {
			keyNode := yn.Content[i]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key must be a scalar", keyNode.Line)
			}
			value, err := fromYAMLNode(yn.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			n.setEntry(keyNode.Value, value)
		}
		return n, nil

	case yaml.SequenceNode:
		n := &Node{Kind: KindSequence, Items: make([]*Node, 0, len(yn.Content))}
		for _, item := range yn.Content {
			child, err := fromYAMLNode(item, depth+1)
			if err != nil {
				return nil, err
			}
			n.Items = append(n.Items, child)
		}
		return n, nil

	case yaml.ScalarNode:
		var v any
		if err := yn.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", yn.Line, err)
		}
		return Scalar(v), nil

	default:
		return nil, fmt.Errorf("line %d: unexpected YAML node kind %d", yn.Line, yn.Kind)
	}
}
