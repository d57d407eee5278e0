package scanner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moolen/deprscan/internal/conftree"
	"github.com/moolen/deprscan/internal/deprecation"
)

func table(keys ...string) deprecation.Table {
	t := make(deprecation.Table, len(keys))
	for _, k := range keys {
		t[k] = json.RawMessage(`{"description": "deprecated"}`)
	}
	return t
}

func entry(key string, value *conftree.Node) conftree.Entry {
	return conftree.Entry{Key: key, Value: value}
}

func paths(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Path)
	}
	return out
}

func TestFindDeprecatedNestedConfig(t *testing.T) {
	// {"api_version": "v1", "settings": {"old_setting": 123, "new_setting": 456}}
	tree := conftree.Mapping(
		entry("api_version", conftree.Scalar("v1")),
		entry("settings", conftree.Mapping(
			entry("old_setting", conftree.Scalar(123)),
			entry("new_setting", conftree.Scalar(456)),
		)),
	)

	findings := FindDeprecated(tree, table("api_version", "old_setting"))

	require.Len(t, findings, 2)
	assert.Equal(t, "api_version", findings[0].Feature)
	assert.Equal(t, "api_version", findings[0].Path)
	assert.Equal(t, "old_setting", findings[1].Feature)
	assert.Equal(t, "settings.old_setting", findings[1].Path)
	assert.JSONEq(t, `{"description": "deprecated"}`, string(findings[0].Info))
}

func TestFindDeprecatedNoMatches(t *testing.T) {
	tree := conftree.Mapping(entry("x", conftree.Scalar(1)))

	findings := FindDeprecated(tree, table("y"))

	require.NotNil(t, findings)
	assert.Empty(t, findings)
}

func TestFindDeprecatedPathThroughSequence(t *testing.T) {
	// {"a": {"b": [1, {"c": 2}]}} with "c" deprecated -> a.b[1].c
	tree := conftree.Mapping(
		entry("a", conftree.Mapping(
			entry("b", conftree.Sequence(
				conftree.Scalar(1),
				conftree.Mapping(entry("c", conftree.Scalar(2))),
			)),
		)),
	)

	findings := FindDeprecated(tree, table("c"))

	require.Len(t, findings, 1)
	assert.Equal(t, "c", findings[0].Feature)
	assert.Equal(t, "a.b[1].c", findings[0].Path)
}

func TestFindDeprecatedEmptyTableAndEmptyTree(t *testing.T) {
	tree := conftree.Mapping(
		entry("old_setting", conftree.Scalar(1)),
	)

	assert.Empty(t, FindDeprecated(tree, deprecation.Table{}))
	assert.Empty(t, FindDeprecated(conftree.Mapping(), table("old_setting")))
	assert.Empty(t, FindDeprecated(nil, table("old_setting")))
}

func TestFindDeprecatedOnlyMappingKeysMatch(t *testing.T) {
	// A scalar value and a sequence element equal to a deprecated key
	// must never match.
	tree := conftree.Mapping(
		entry("setting", conftree.Scalar("old_setting")),
		entry("list", conftree.Sequence(conftree.Scalar("old_setting"))),
	)

	findings := FindDeprecated(tree, table("old_setting"))

	assert.Empty(t, findings)
}

func TestFindDeprecatedSameKeyAtMultiplePaths(t *testing.T) {
	// No deduplication: each occurrence yields its own finding.
	tree := conftree.Mapping(
		entry("old_setting", conftree.Scalar(1)),
		entry("nested", conftree.Mapping(
			entry("old_setting", conftree.Scalar(2)),
		)),
		entry("list", conftree.Sequence(
			conftree.Mapping(entry("old_setting", conftree.Scalar(3))),
		)),
	)

	findings := FindDeprecated(tree, table("old_setting"))

	assert.Equal(t, []string{"old_setting", "nested.old_setting", "list[0].old_setting"}, paths(findings))
}

func TestFindDeprecatedMatchedKeyStillDescended(t *testing.T) {
	// A match on a key does not stop the walk below it.
	tree := conftree.Mapping(
		entry("legacy", conftree.Mapping(
			entry("old_setting", conftree.Scalar(1)),
		)),
	)

	findings := FindDeprecated(tree, table("legacy", "old_setting"))

	assert.Equal(t, []string{"legacy", "legacy.old_setting"}, paths(findings))
}

func TestFindDeprecatedTraversalOrderIsDeterministic(t *testing.T) {
	tree := conftree.Mapping(
		entry("b", conftree.Mapping(entry("old_setting", conftree.Scalar(1)))),
		entry("a", conftree.Mapping(entry("old_setting", conftree.Scalar(2)))),
	)
	tbl := table("old_setting", "a", "b")

	first := FindDeprecated(tree, tbl)
	second := FindDeprecated(tree, tbl)

	// Document order, not key order, and identical across runs.
	assert.Equal(t, []string{"b", "b.old_setting", "a", "a.old_setting"}, paths(first))
	assert.Equal(t, first, second)
}

func TestFindDeprecatedDeepNesting(t *testing.T) {
	// 100k levels of nesting must not exhaust the stack: the walk is
	// iterative, not recursive.
	const depth = 100_000
	tree := conftree.Mapping(entry("old_setting", conftree.Scalar(0)))
	for i := 0; i < depth; i++ {
		tree = conftree.Mapping(entry("level", tree))
	}

	findings := FindDeprecated(tree, table("old_setting"))

	require.Len(t, findings, 1)
	assert.Equal(t, "old_setting", findings[0].Feature)
}
