package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contentmgr/internal/domain"
)

func TestFuzzyScore(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		query     string
		wantScore int
		wantMin   int // use this for relative comparisons
	}{
		{
			name:      "exact match",
			target:    "fireball",
			query:     "fireball",
			wantScore: 150, // 100 for contains + 50 for prefix
		},
		{
			name:      "substring match",
			target:    "big fireball",
			query:     "fire",
			wantScore: 100,
		},
		{
			name:    "fuzzy across separators",
			target:  "frost_nova",
			query:   "fn",
			wantMin: 20,
		},
		{
			name:      "no match",
			target:    "fireball",
			query:     "xyz",
			wantScore: 0,
		},
		{
			name:      "empty query",
			target:    "fireball",
			query:     "",
			wantScore: 0,
		},
		{
			name:    "case insensitive",
			target:  "FIREBALL",
			query:   "fireball",
			wantMin: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := FuzzyScore(tt.target, tt.query)
			if tt.wantMin > 0 {
				assert.GreaterOrEqual(t, score, tt.wantMin)
				return
			}
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestSearchCommand_Execute(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	hits, err := NewSearchCommand(session, "", "iron").Execute(ctx)
	require.NoError(t, err)
	require.Len(t, hits, 2)
	docs := []string{hits[0].Document, hits[1].Document}
	assert.ElementsMatch(t, []string{domain.DocWeapons, domain.DocMaterials}, docs)

	hits, err = NewSearchCommand(session, domain.DocSkills, "Frost Nova").Execute(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, domain.Path{"skills", "frost_nova"}, hits[0].Path)
	assert.Equal(t, "Frost Nova", hits[0].Name)

	hits, err = NewSearchCommand(session, "", "x").Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, hits)

	_, err = NewSearchCommand(session, "Spells", "iron").Execute(ctx)
	assert.ErrorIs(t, err, domain.ErrUnknownDocument)
}

func TestSearchCommand_FindsRecordsHoldingLists(t *testing.T) {
	ctx := context.Background()
	session, _ := newTestSession(t)

	weapons, err := session.Document(domain.DocWeapons)
	require.NoError(t, err)
	sword, err := domain.ParseJSON([]byte(`{"name": "Flame Sword", "elements": ["Fire"], "value": 40}`))
	require.NoError(t, err)
	require.NoError(t, domain.SetExisting(weapons, domain.Path{"melee", "one_hand", "flame_sword"}, sword))

	hits, err := NewSearchCommand(session, domain.DocWeapons, "flame").Execute(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, domain.Path{"melee", "one_hand", "flame_sword"}, hits[0].Path)

	docs, err := NewListDocumentsCommand(session).Execute(ctx)
	require.NoError(t, err)
	for _, d := range docs {
		if d.Name == domain.DocWeapons {
			assert.Equal(t, 3, d.Entries)
		}
	}
}
