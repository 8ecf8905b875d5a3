package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNestedObjects(t *testing.T) {
	target := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	source := map[string]any{"b": map[string]any{"d": 3}}

	got := Merge(target, source)

	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 2, "d": 3}}, got)

	// Inputs are unchanged.
	assert.Equal(t, map[string]any{"a": 1, "b": map[string]any{"c": 2}}, target)
	assert.Equal(t, map[string]any{"b": map[string]any{"d": 3}}, source)
}

func TestMergeReplacesNonObjects(t *testing.T) {
	got := Merge(
		map[string]any{"a": map[string]any{"x": 1}, "b": 2},
		map[string]any{"a": "flat", "b": map[string]any{"y": 3}},
	)
	assert.Equal(t, map[string]any{"a": "flat", "b": map[string]any{"y": 3}}, got)
}

func TestMergeReplacesArraysWholesale(t *testing.T) {
	got := Merge(
		map[string]any{"tags": []any{"a", "b", "c"}},
		map[string]any{"tags": []any{"z"}},
	)
	assert.Equal(t, map[string]any{"tags": []any{"z"}}, got)
}

func TestMergeMultipleSources(t *testing.T) {
	got := Merge(
		map[string]any{"a": 1},
		map[string]any{"b": 2},
		map[string]any{"a": 3, "c": 4},
	)
	assert.Equal(t, map[string]any{"a": 3, "b": 2, "c": 4}, got)
}

func TestMergeNilTarget(t *testing.T) {
	got := Merge(nil, map[string]any{"a": 1})
	assert.Equal(t, map[string]any{"a": 1}, got)
}

func TestDeepCopyIsolatesNesting(t *testing.T) {
	orig := map[string]any{"a": map[string]any{"b": 1}, "list": []any{1, 2}}
	cp := deepCopyMap(orig)
	require.Equal(t, orig, cp)

	cp["a"].(map[string]any)["b"] = 99
	cp["list"].([]any)[0] = 99
	assert.Equal(t, 1, orig["a"].(map[string]any)["b"])
	assert.Equal(t, 1, orig["list"].([]any)[0])
}
