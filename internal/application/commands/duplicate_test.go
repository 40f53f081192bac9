package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

func TestDuplicateEntryCommand_Execute(t *testing.T) {
	ctx := context.Background()
	source := domain.Path{"melee", "one_hand", "iron_sword"}

	t.Run("deep copies under the parent", func(t *testing.T) {
		session, _ := newTestSession(t)

		res, err := NewDuplicateEntryCommand(session, domain.DocWeapons, source, "Steel Sword").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.Path{"melee", "one_hand", "steel_sword"}, res.Path)

		orig := mustResolve(t, session, domain.DocWeapons, source)
		dup := mustResolve(t, session, domain.DocWeapons, res.Path)

		name, _ := dup.Get("name")
		assert.Equal(t, "Steel Sword", name.StringValue())
		origName, _ := orig.Get("name")
		assert.Equal(t, "Iron Sword", origName.StringValue())

		value, _ := dup.Get("value")
		assert.Equal(t, int64(12), value.IntValue())
	})

	t.Run("lists are not shared", func(t *testing.T) {
		session, _ := newTestSession(t)
		src := domain.Path{"skills", "frost_nova"}

		res, err := NewDuplicateEntryCommand(session, domain.DocSkills, src, "Frost Storm").Execute(ctx)
		require.NoError(t, err)

		dup := mustResolve(t, session, domain.DocSkills, res.Path)
		elements, _ := dup.Get("elements")
		elements.Append(domain.String("Wind"))

		orig := mustResolve(t, session, domain.DocSkills, src)
		origElements, _ := orig.Get("elements")
		assert.Equal(t, 2, origElements.Len())
	})

	t.Run("adds a name to entries without one", func(t *testing.T) {
		session, _ := newTestSession(t)

		res, err := NewDuplicateEntryCommand(session, domain.DocClasses, domain.Path{"playable", "knight"}, "Paladin").Execute(ctx)
		require.NoError(t, err)
		dup := mustResolve(t, session, domain.DocClasses, res.Path)
		name, ok := dup.Get("name")
		require.True(t, ok)
		assert.Equal(t, "Paladin", name.StringValue())
	})

	t.Run("target exists", func(t *testing.T) {
		session, _ := newTestSession(t)
		_, err := NewDuplicateEntryCommand(session, domain.DocWeapons, source, "Iron Sword").Execute(ctx)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("source gone", func(t *testing.T) {
		session, _ := newTestSession(t)
		_, err := NewDuplicateEntryCommand(session, domain.DocWeapons, domain.Path{"melee", "one_hand", "ghost"}, "Ghost II").Execute(ctx)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("no selection", func(t *testing.T) {
		session, _ := newTestSession(t)
		_, err := NewDuplicateEntryCommand(session, domain.DocWeapons, nil, "Anything").Execute(ctx)
		assert.ErrorIs(t, err, application.ErrNoSelection)
	})

	t.Run("empty new name", func(t *testing.T) {
		session, _ := newTestSession(t)
		_, err := NewDuplicateEntryCommand(session, domain.DocWeapons, source, " ").Execute(ctx)
		var valErr *application.ValidationError
		assert.ErrorAs(t, err, &valErr)
	})
}
