package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmgr/internal/adapters/filesystem"
	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

func newTestGuard(t *testing.T) *Guard {
	t.Helper()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "data/items/armors.json", []byte(`{
		"heavy": {"head": {"iron_helm": {"name": "Iron Helm", "value": 30, "rarity": "common"}}},
		"light": {"feet": {"sandals": {"name": "Sandals", "value": 2, "rarity": "common"}}}
	}`), 0644))
	require.NoError(t, util.WriteFile(fs, "data/rarities.json", []byte(`{"common": {}, "rare": {}}`), 0644))

	store := filesystem.NewStore(fs, domain.DefaultCatalog())
	session := application.NewSession(store, domain.DefaultCatalog(), nil)
	require.NoError(t, session.LoadAll(context.Background()))
	return NewGuard(session)
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func TestReadTools(t *testing.T) {
	g := newTestGuard(t)

	text, isErr := call(t, listHandler(g), map[string]any{"document": domain.DocArmors})
	assert.False(t, isErr)
	assert.Contains(t, text, "heavy/head/iron_helm")
	assert.Contains(t, text, "light/feet/sandals")

	text, _ = call(t, treeHandler(g), map[string]any{"document": domain.DocArmors, "filter": "helm"})
	assert.Equal(t, "heavy\n  head\n    iron_helm *\nlight\n", text)

	text, _ = call(t, showHandler(g), map[string]any{"document": domain.DocArmors, "path": "heavy/head/iron_helm"})
	assert.Contains(t, text, "value (number): 30")
	assert.Contains(t, text, "rarity (rarity): common")

	text, _ = call(t, enumsHandler(g), nil)
	assert.Contains(t, text, "rarities: common, rare")

	text, isErr = call(t, queryHandler(g), map[string]any{"document": domain.DocArmors, "expression": "$.heavy.head.iron_helm.value"})
	assert.False(t, isErr)
	assert.Equal(t, "[\n  30\n]", text)

	_, isErr = call(t, treeHandler(g), map[string]any{"document": domain.DocRarities})
	assert.True(t, isErr)
}

func TestWriteTools(t *testing.T) {
	g := newTestGuard(t)

	text, isErr := call(t, setFieldsHandler(g), map[string]any{
		"document": domain.DocArmors,
		"path":     "heavy/head/iron_helm",
		"fields":   map[string]any{"value": float64(45), "rarity": "rare"},
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "2 field(s) updated")

	text, isErr = call(t, createHandler(g), map[string]any{
		"document": domain.DocArmors,
		"name":     "Steel Boots",
		"category": "heavy",
		"slot":     "feet",
	})
	require.False(t, isErr, text)
	assert.Contains(t, text, "heavy/feet/steel_boots")

	text, isErr = call(t, deleteHandler(g), map[string]any{
		"document": domain.DocArmors,
		"path":     "light/feet/sandals",
	})
	assert.True(t, isErr)
	assert.Contains(t, text, "not confirmed")

	text, isErr = call(t, saveAllHandler(g), nil)
	require.False(t, isErr, text)

	text, _ = call(t, documentsHandler(g), nil)
	assert.False(t, strings.Contains(text, "(modified)"))
}

func TestRawText(t *testing.T) {
	assert.Equal(t, "15", rawText(float64(15)))
	assert.Equal(t, "2.5", rawText(2.5))
	assert.Equal(t, "true", rawText(true))
	assert.Equal(t, "Fire, Ice", rawText([]any{"Fire", "Ice"}))
	assert.Equal(t, "", rawText(nil))
}
