package commands

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmgr/internal/application"
	"contentmgr/internal/domain"
)

func TestQueryCommand_Execute(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	res, err := NewQueryCommand(session, domain.DocSkills, "$.skills.fireball.power").Execute(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff([]any{int64(12)}, res.Values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}

	res, err = NewQueryCommand(session, "", "$.Weapons.melee.one_hand.iron_sword.name").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{"Iron Sword"}, res.Values)

	res, err = NewQueryCommand(session, domain.DocSkills, "$.skills.*.mp_cost").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{int64(5)}, res.Values)

	_, err = NewQueryCommand(session, domain.DocSkills, "$[[[").Execute(ctx)
	var valErr *application.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestExportCommand_Execute(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	res, err := NewExportCommand(session, domain.DocWeapons, domain.Path{"melee", "one_hand", "iron_sword"}, FormatYAML).Execute(ctx)
	require.NoError(t, err)
	want := strings.Join([]string{
		"name: Iron Sword",
		"value: 12",
		"weight: 3.5",
		"rarity: common",
		"",
	}, "\n")
	assert.Equal(t, want, string(res.Data))

	res, err = NewExportCommand(session, domain.DocMaterials, nil, "").Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, res.Format)
	back, err := domain.DecodeDocument(res.Data)
	require.NoError(t, err)
	doc, _ := session.Document(domain.DocMaterials)
	assert.True(t, doc.Equal(back))

	_, err = NewExportCommand(session, domain.DocMaterials, nil, "toml").Execute(ctx)
	var valErr *application.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestEncodeYAML_QuotesAmbiguousStrings(t *testing.T) {
	n := domain.NewMap()
	n.Set("code", domain.String("42"))
	n.Set("empty", domain.String(""))
	n.Set("flag", domain.Bool(true))
	n.Set("list", domain.Strings("a"))
	n.Set("none", domain.Null())

	data, err := EncodeYAML(n)
	require.NoError(t, err)
	assert.Equal(t, "code: \"42\"\nempty: \"\"\nflag: true\nlist:\n  - a\nnone: null\n", string(data))
}
