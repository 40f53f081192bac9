package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArmors = `{
    "heavy": {
        "head": {"iron_helm": {"name": "Iron Helm"}, "steel_helm": {"name": "Steel Helm"}},
        "chest": {"iron_plate": {"name": "Iron Plate"}}
    },
    "light": {
        "head": {"leather_cap": {"name": "Leather Cap"}}
    },
    "version": 2
}`

func keysOf(items []*TreeItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Path.String()
	}
	return out
}

func TestBuildTree(t *testing.T) {
	root := BuildTree(mustDecode(t, sampleArmors))

	// Rows start collapsed and scalars never become rows
	assert.Equal(t, []string{"heavy", "light"}, keysOf(root.Flatten()))

	heavy := root.Find(Path{"heavy"})
	require.NotNil(t, heavy)
	heavy.Expand()
	assert.Equal(t, []string{"heavy", "heavy/head", "heavy/chest", "light"}, keysOf(root.Flatten()))

	helm := root.Find(Path{"heavy", "head", "iron_helm"})
	require.NotNil(t, helm)
	assert.True(t, helm.Leaf)
	assert.Equal(t, 2, helm.Depth())
	assert.Equal(t, 0, heavy.Depth())
	assert.False(t, heavy.Leaf)

	heavy.Toggle()
	assert.False(t, heavy.Expanded)
	assert.Nil(t, root.Find(Path{"heavy", "legs"}))
}

func TestMatchTree(t *testing.T) {
	root := BuildTree(mustDecode(t, sampleArmors))

	hits := MatchTree(root, "HELM")
	assert.Equal(t, []string{"heavy/head/iron_helm", "heavy/head/steel_helm"}, keysOf(hits))
	assert.Equal(t, []string{
		"heavy",
		"heavy/head",
		"heavy/head/iron_helm",
		"heavy/head/steel_helm",
		"heavy/chest",
		"light",
	}, keysOf(root.Flatten()))

	assert.Empty(t, MatchTree(root, "mithril"))
	assert.Equal(t, []string{"heavy", "light"}, keysOf(root.Flatten()))

	MatchTree(root, "head")
	MatchTree(root, "")
	for _, it := range root.Flatten() {
		assert.False(t, it.Matched)
		assert.False(t, it.Expanded)
	}
}
