// Package conftree parses YAML and JSON configuration documents into a
// generic tree of mappings, sequences and scalars.
//
// Mapping entries keep the order they appear in the source document so that
// downstream consumers (the scanner, reports) traverse and render in
// document order. Standard map-based decoding would lose that order, which
// is why mappings are slices of entries rather than Go maps.
package conftree

// Kind discriminates the three node shapes a configuration document can hold.
type Kind int

const (
	// KindMapping is a set of string-keyed entries.
	KindMapping Kind = iota
	// KindSequence is an ordered list of nodes.
	KindSequence
	// KindScalar is a leaf value: string, number, bool or null.
	KindScalar
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Entry is a single key-value pair in a mapping node.
type Entry struct {
	Key   string
	Value *Node
}

// Node is one value in a parsed configuration document. Exactly one of
// Entries, Items or Value is meaningful, selected by Kind.
type Node struct {
	Kind Kind

	// Entries holds the key-value pairs of a mapping, in document order.
	Entries []Entry

	// Items holds the elements of a sequence, in document order.
	Items []*Node

	// Value holds a scalar: string, int, int64, float64, bool,
	// json.Number or nil.
	Value any
}

// Scalar returns a scalar node holding v.
func Scalar(v any) *Node {
	return &Node{Kind: KindScalar, Value: v}
}

// Mapping returns a mapping node with the given entries.
func Mapping(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}

// Sequence returns a sequence node with the given items.
func Sequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// setEntry replaces the value of an existing key or appends a new entry.
// Duplicate keys within one mapping level are not representable in a
// key-unique mapping; the last occurrence wins, at the position of the
// first. This matches how map-based decoders behave and is a documented
// limitation for source formats that permit duplicates.
func (n *Node) setEntry(key string, value *Node) {
	for i := range n.Entries {
		if n.Entries[i].Key == key {
			n.Entries[i].Value = value
			return
		}
	}
	n.Entries = append(n.Entries, Entry{Key: key, Value: value})
}
