package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swordRecord() *Node {
	r := NewMap()
	r.Set("name", String("Iron Sword"))
	r.Set("value", Int(12))
	r.Set("two_handed", Bool(false))
	r.Set("rarity", String("common"))
	r.Set("elements", Strings("Fire"))
	r.Set("tags", Strings("blade", "metal"))
	stats := NewMap()
	stats.Set("atk", Int(4))
	r.Set("stats", stats)
	return r
}

func TestRecordFields_Roles(t *testing.T) {
	fields := RecordFields(swordRecord())
	require.Len(t, fields, 7)

	roles := make(map[string]FieldRole)
	for _, f := range fields {
		roles[f.Key] = f.Role
	}
	assert.Equal(t, RoleText, roles["name"])
	assert.Equal(t, RoleNumber, roles["value"])
	assert.Equal(t, RoleBool, roles["two_handed"])
	assert.Equal(t, RoleRarity, roles["rarity"])
	assert.Equal(t, RoleElementList, roles["elements"])
	assert.Equal(t, RoleList, roles["tags"])
	assert.Equal(t, RoleNested, roles["stats"])

	assert.Equal(t, "blade, metal", fields[5].Text)
	assert.Equal(t, RoleElement, RoleFor("Element", String("Fire")))
}

func TestApplyEdits(t *testing.T) {
	record := swordRecord()

	res := ApplyEdits(record, map[string]string{
		"value":      "15.8",
		"two_handed": "yes",
		"name":       "Iron Sword",
		"tags":       "blade",
		"stats":      "{}",
		"ghost":      "boo",
		"another":    "x",
	})

	assert.Equal(t, []string{"value", "two_handed", "tags"}, res.Changed)
	assert.Equal(t, []string{"stats", "another", "ghost"}, res.Skipped)

	v, _ := record.Get("value")
	assert.Equal(t, int64(15), v.IntValue())
	th, _ := record.Get("two_handed")
	assert.True(t, th.BoolValue())
	assert.False(t, record.Has("ghost"))
	stats, _ := record.Get("stats")
	assert.True(t, stats.IsMap())
}
