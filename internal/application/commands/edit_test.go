package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

func TestApplyFieldsCommand_Execute(t *testing.T) {
	ctx := context.Background()
	path := domain.Path{"melee", "one_hand", "iron_sword"}

	session, _ := newTestSession(t)
	res, err := NewApplyFieldsCommand(session, domain.DocWeapons, path, map[string]string{
		"value":  "14.7",
		"weight": "abc",
		"name":   "Iron Sword",
		"bogus":  "1",
	}).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"value", "weight"}, res.Changed)
	assert.Equal(t, []string{"bogus"}, res.Skipped)
	assert.Contains(t, res.Message, "2 field(s) updated")

	record := mustResolve(t, session, domain.DocWeapons, path)
	value, _ := record.Get("value")
	assert.Equal(t, domain.KindInt, value.Kind())
	assert.Equal(t, int64(14), value.IntValue())

	// Unparsable numbers keep the raw text
	weight, _ := record.Get("weight")
	assert.Equal(t, domain.KindString, weight.Kind())
	assert.Equal(t, "abc", weight.StringValue())
}

func TestApplyFieldsCommand_ListFields(t *testing.T) {
	ctx := context.Background()
	path := domain.Path{"skills", "frost_nova"}
	session, _ := newTestSession(t)

	res, err := NewApplyFieldsCommand(session, domain.DocSkills, path, map[string]string{
		"elements": "Ice, Wind ,  ",
	}).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"elements"}, res.Changed)

	elements, _ := mustResolve(t, session, domain.DocSkills, path).Get("elements")
	require.True(t, elements.IsList())
	assert.Equal(t, "Ice, Wind", elements.Text())
}

func TestApplyFieldsCommand_Errors(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	_, err := NewApplyFieldsCommand(session, domain.DocWeapons, nil, map[string]string{"a": "b"}).Execute(ctx)
	assert.ErrorIs(t, err, application.ErrNoSelection)

	_, err = NewApplyFieldsCommand(session, domain.DocWeapons, domain.Path{"melee", "ghost"}, map[string]string{"a": "b"}).Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = NewApplyFieldsCommand(session, domain.DocWeapons, domain.Path{"melee", "one_hand", "iron_sword", "name"}, map[string]string{"a": "b"}).Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrNotMapping)

	_, err = NewApplyFieldsCommand(session, domain.DocWeapons, domain.Path{"melee"}, nil).Execute(ctx)
	var valErr *application.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestRevertEntryCommand_Execute(t *testing.T) {
	ctx := context.Background()
	path := domain.Path{"melee", "one_hand", "iron_sword"}
	session, _ := newTestSession(t)

	_, err := NewApplyFieldsCommand(session, domain.DocWeapons, path, map[string]string{"value": "99"}).Execute(ctx)
	require.NoError(t, err)
	assert.True(t, session.Dirty(domain.DocWeapons))

	_, err = NewRevertEntryCommand(session, domain.DocWeapons, path).Execute(ctx)
	require.NoError(t, err)

	value, _ := mustResolve(t, session, domain.DocWeapons, path).Get("value")
	assert.Equal(t, int64(12), value.IntValue())
	assert.False(t, session.Dirty(domain.DocWeapons))

	// The restored entry does not share nodes with the snapshot
	_, err = NewApplyFieldsCommand(session, domain.DocWeapons, path, map[string]string{"value": "1"}).Execute(ctx)
	require.NoError(t, err)
	snap, _ := session.Snapshot(domain.DocWeapons)
	saved, err := domain.Resolve(snap, path.Child("value"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), saved.IntValue())
}

func TestRevertEntryCommand_NewEntryHasNoSavedVersion(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	res, err := NewCreateEntryCommand(session, domain.DocMaterials, "Copper Ore", domain.Placement{}).Execute(ctx)
	require.NoError(t, err)

	_, err = NewRevertEntryCommand(session, domain.DocMaterials, res.Path).Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
