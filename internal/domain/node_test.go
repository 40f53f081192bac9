package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestNode_CloneIsDeep(t *testing.T) {
	orig := NewMap()
	orig.Set("name", String("Iron Sword"))
	orig.Set("tags", Strings("blade"))
	stats := NewMap()
	stats.Set("atk", Int(4))
	orig.Set("stats", stats)

	dup := orig.Clone()
	assert.True(t, orig.Equal(dup))

	dup.Set("name", String("Steel Sword"))
	tags, _ := dup.Get("tags")
	tags.Append(String("steel"))
	dupStats, _ := dup.Get("stats")
	dupStats.Set("atk", Int(9))

	name, _ := orig.Get("name")
	assert.Equal(t, "Iron Sword", name.StringValue())
	origTags, _ := orig.Get("tags")
	assert.Equal(t, 1, origTags.Len())
	atk, _ := stats.Get("atk")
	assert.Equal(t, int64(4), atk.IntValue())
}

func TestNode_EqualIgnoresKeyOrderButNotKind(t *testing.T) {
	a := NewMap()
	a.Set("x", Int(1))
	a.Set("y", Int(2))
	b := NewMap()
	b.Set("y", Int(2))
	b.Set("x", Int(1))
	assert.True(t, a.Equal(b))

	c := NewMap()
	c.Set("x", Float(1))
	c.Set("y", Int(2))
	assert.False(t, a.Equal(c))
}

func TestNode_SetKeepsPosition(t *testing.T) {
	n := NewMap()
	n.Set("a", Int(1))
	n.Set("b", Int(2))
	n.Set("a", Int(3))
	assert.Equal(t, []string{"a", "b"}, n.Keys())
}

func TestNode_Interface(t *testing.T) {
	n := NewMap()
	n.Set("name", String("Fireball"))
	n.Set("power", Int(10))
	n.Set("elements", Strings("Fire"))
	n.Set("aoe", Bool(true))
	n.Set("scale", Float(1.5))
	n.Set("extra", Null())

	want := map[string]any{
		"name":     "Fireball",
		"power":    int64(10),
		"elements": []any{"Fire"},
		"aoe":      true,
		"scale":    1.5,
		"extra":    nil,
	}
	if diff := cmp.Diff(want, n.Interface()); diff != "" {
		t.Errorf("Interface() mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_Text(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"null", Null(), ""},
		{"bool", Bool(true), "true"},
		{"int", Int(-3), "-3"},
		{"float", Float(2), "2.0"},
		{"list", Strings("Fire", "Ice"), "Fire, Ice"},
		{"string", String("hello"), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Text())
		})
	}
}
