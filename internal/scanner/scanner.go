// Package scanner matches configuration tree keys against a deprecation
// table and records the structural path of every occurrence.
package scanner

import (
	"github.com/moolen/deprscan/internal/conftree"
	"github.com/moolen/deprscan/internal/deprecation"
)

// frame is one pending node on the traversal worklist.
type frame struct {
	node *conftree.Node
	path string

	// key is set when the node is the value of a mapping entry; only
	// those keys are candidates for a table match.
	key         string
	fromMapping bool
}

// FindDeprecated walks tree in pre-order and returns one Finding for every
// mapping key that is present in table, in traversal order. Only mapping
// keys are checked: scalar values and sequence elements never match, and
// the same key at multiple paths yields multiple findings.
//
// The walk uses an explicit worklist instead of call recursion, so input
// nesting depth cannot exhaust the goroutine stack. The result is never
// nil; a clean document yields an empty slice.
func FindDeprecated(tree *conftree.Node, table deprecation.Table) []Finding {
	findings := make([]Finding, 0)
	if tree == nil {
		return findings
	}

	stack := []frame{{node: tree}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.fromMapping && table.Has(f.key) {
			findings = append(findings, Finding{
				Feature: f.key,
				Path:    f.path,
				Info:    table[f.key],
			})
		}

		switch f.node.Kind {
		case conftree.KindMapping:
			// Push in reverse so entries pop in document order.
			for i := len(f.node.Entries) - 1; i >= 0; i-- {
				entry := f.node.Entries[i]
				stack = append(stack, frame{
					node:        entry.Value,
					path:        childPath(f.path, entry.Key),
					key:         entry.Key,
					fromMapping: true,
				})
			}

		case conftree.KindSequence:
			for i := len(f.node.Items) - 1; i >= 0; i-- {
				stack = append(stack, frame{
					node: f.node.Items[i],
					path: indexPath(f.path, i),
				})
			}

		case conftree.KindScalar:
			// Base case: nothing to match, nothing to descend into.
		}
	}

	return findings
}
