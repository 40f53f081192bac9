package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex_Layouts(t *testing.T) {
	grouped := mustDecode(t, `{"playable": {"knight": {}, "mage": {}}, "non_playable": {"goblin": {}}}`)
	entries := BuildIndex(LayoutGrouped, grouped)
	assert.Equal(t, []IndexEntry{
		{Label: "playable:knight", Path: Path{"playable", "knight"}},
		{Label: "playable:mage", Path: Path{"playable", "mage"}},
		{Label: "non_playable:goblin", Path: Path{"non_playable", "goblin"}},
	}, entries)

	skills := mustDecode(t, `{"skills": {"fireball": {}, "heal": {}}}`)
	assert.Equal(t, []IndexEntry{
		{Label: "fireball", Path: Path{"skills", "fireball"}},
		{Label: "heal", Path: Path{"skills", "heal"}},
	}, BuildIndex(LayoutSkills, skills))

	flatSkills := mustDecode(t, `{"bolt": {}}`)
	assert.Equal(t, []IndexEntry{{Label: "bolt", Path: Path{"bolt"}}}, BuildIndex(LayoutSkills, flatSkills))

	nested := weaponsDoc(t)
	assert.Equal(t, []IndexEntry{
		{Label: "melee/one_hand/iron_sword", Path: Path{"melee", "one_hand", "iron_sword"}},
		{Label: "ranged", Path: Path{"ranged"}},
	}, BuildIndex(LayoutNested, nested))
}

func TestBuildIndex_NestedRecordsWithLists(t *testing.T) {
	weapons := mustDecode(t, `{
		"melee": {
			"one_hand": {
				"flame_sword": {"name": "Flame Sword", "elements": ["Fire"], "value": 40},
				"iron_sword": {"name": "Iron Sword", "value": 12}
			}
		}
	}`)

	assert.Equal(t, []IndexEntry{
		{Label: "melee/one_hand/flame_sword", Path: Path{"melee", "one_hand", "flame_sword"}},
		{Label: "melee/one_hand/iron_sword", Path: Path{"melee", "one_hand", "iron_sword"}},
	}, BuildIndex(LayoutNested, weapons))
}

func TestBuildIndex_SkillsAfterCreateAtRoot(t *testing.T) {
	skills := mustDecode(t, `{"fireball": {"power": 12}}`)
	spec := DocumentSpec{Layout: LayoutSkills}
	path := spec.EntryPath(skills, Placement{}, "ice_bolt")
	require.NoError(t, SetOrCreatePath(skills, path, spec.Template("Ice Bolt")))

	assert.Equal(t, []IndexEntry{
		{Label: "fireball", Path: Path{"fireball"}},
		{Label: "ice_bolt", Path: Path{"ice_bolt"}},
	}, BuildIndex(LayoutSkills, skills))
}

func TestFilterIndex(t *testing.T) {
	entries := []IndexEntry{
		{Label: "Fireball", Path: Path{"fireball"}},
		{Label: "fire_wall", Path: Path{"fire_wall"}},
		{Label: "heal", Path: Path{"heal"}},
	}

	assert.Len(t, FilterIndex(entries, "FIRE"), 2)
	assert.Len(t, FilterIndex(entries, "  "), 3)
	assert.Empty(t, FilterIndex(entries, "zzz"))

	// Filtering then clearing restores the full list
	narrowed := FilterIndex(entries, "heal")
	assert.Len(t, narrowed, 1)
	assert.Equal(t, entries, FilterIndex(entries, ""))
}
