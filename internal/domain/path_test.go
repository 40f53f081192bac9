package domain

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weaponsDoc(t *testing.T) *Node {
	t.Helper()
	doc, err := DecodeDocument([]byte(sampleWeapons))
	require.NoError(t, err)
	return doc
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", Path{}},
		{"/", Path{}},
		{"melee", Path{"melee"}},
		{"/melee/one_hand/", Path{"melee", "one_hand"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePath(tt.in))
		})
	}
}

func TestPath_ParentAndChildDoNotAlias(t *testing.T) {
	p := Path{"a", "b", "c"}
	parent := p.Parent()
	parent = append(parent, "x")
	assert.Equal(t, Path{"a", "b", "c"}, p)

	child := p.Child("d")
	child[0] = "z"
	assert.Equal(t, "a", p[0])
	assert.Equal(t, "c", p.Last())
	assert.Equal(t, "", Path{}.Last())
}

func TestResolve(t *testing.T) {
	doc := weaponsDoc(t)

	root, err := Resolve(doc, Path{})
	require.NoError(t, err)
	assert.Same(t, doc, root)

	name, err := Resolve(doc, Path{"melee", "one_hand", "iron_sword", "name"})
	require.NoError(t, err)
	assert.Equal(t, "Iron Sword", name.StringValue())

	_, err = Resolve(doc, Path{"melee", "two_hand", "iron_sword"})
	assert.ErrorIs(t, err, ErrNotFound)

	var pe *PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Segment)

	// Walking through a scalar is a not-found as well
	_, err = Resolve(doc, Path{"melee", "one_hand", "iron_sword", "name", "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestSetExisting(t *testing.T) {
	doc := weaponsDoc(t)

	err := SetExisting(doc, Path{"melee", "one_hand", "iron_sword", "value"}, Int(20))
	require.NoError(t, err)
	v, _ := Resolve(doc, Path{"melee", "one_hand", "iron_sword", "value"})
	assert.Equal(t, int64(20), v.IntValue())

	err = SetExisting(doc, Path{"melee", "one_hand", "steel_sword"}, NewMap())
	require.NoError(t, err)
	assert.True(t, doc.Has("melee"))
	_, err = Resolve(doc, Path{"melee", "one_hand", "steel_sword"})
	assert.NoError(t, err)

	err = SetExisting(doc, Path{"magic", "staff", "oak_staff"}, NewMap())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, doc.Has("magic"))

	assert.ErrorIs(t, SetExisting(doc, Path{}, Int(1)), ErrEmptyPath)
}

func TestSetOrCreatePath(t *testing.T) {
	doc := weaponsDoc(t)

	err := SetOrCreatePath(doc, Path{"magic", "staff", "oak_staff"}, String("x"))
	require.NoError(t, err)
	v, err := Resolve(doc, Path{"magic", "staff", "oak_staff"})
	require.NoError(t, err)
	assert.Equal(t, "x", v.StringValue())

	// A scalar in the way fails without creating anything
	before := doc.Clone()
	err = SetOrCreatePath(doc, Path{"melee", "one_hand", "iron_sword", "name", "deep", "er"}, Int(1))
	assert.ErrorIs(t, err, ErrNotMapping)
	assert.True(t, before.Equal(doc))

	assert.ErrorIs(t, SetOrCreatePath(doc, nil, Int(1)), ErrEmptyPath)
}

func TestDelete(t *testing.T) {
	doc := weaponsDoc(t)
	path := Path{"melee", "one_hand", "iron_sword"}

	require.NoError(t, Delete(doc, path))
	_, err := Resolve(doc, path)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, Delete(doc, path), ErrNotFound)
	assert.ErrorIs(t, Delete(doc, Path{"nope", "x"}), ErrNotFound)
	assert.ErrorIs(t, Delete(doc, Path{}), ErrEmptyPath)
}

// randomTree builds a mapping of up to depth levels with mixed values
func randomTree(r *rand.Rand, depth int) *Node {
	n := NewMap()
	width := r.Intn(4)
	for i := 0; i < width; i++ {
		key := "k" + strconv.Itoa(i)
		switch choice := r.Intn(6); {
		case choice == 0 && depth > 0:
			n.Set(key, randomTree(r, depth-1))
		case choice == 1:
			n.Set(key, Strings("a", "b"))
		case choice == 2:
			n.Set(key, Int(r.Int63n(100)))
		case choice == 3:
			n.Set(key, Bool(r.Intn(2) == 0))
		case choice == 4:
			n.Set(key, Null())
		default:
			n.Set(key, String("s"))
		}
	}
	return n
}

func TestClassify_MatchesDirectChildren(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		tree := randomTree(r, r.Intn(6))

		hasContainer := false
		tree.Each(func(_ string, v *Node) {
			if v.IsMap() || v.IsList() {
				hasContainer = true
			}
		})

		want := ClassLeaf
		if hasContainer {
			want = ClassBranch
		}
		require.Equal(t, want, Classify(tree), "tree %d", i)
	}
}

func TestClassify_NonMappings(t *testing.T) {
	assert.Equal(t, ClassLeaf, Classify(Int(1)))
	assert.Equal(t, ClassLeaf, Classify(Strings("a")))
	assert.Equal(t, ClassLeaf, Classify(NewMap()))
	assert.False(t, IsRecord(Strings("a")))
	assert.True(t, IsRecord(NewMap()))
}

func TestDeleteThenResolve_RandomTrees(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		tree := randomTree(r, 5)
		var paths []Path
		var walk func(n *Node, at Path)
		walk = func(n *Node, at Path) {
			n.Each(func(k string, v *Node) {
				p := at.Child(k)
				paths = append(paths, p)
				walk(v, p)
			})
		}
		walk(tree, Path{})
		if len(paths) == 0 {
			continue
		}

		p := paths[r.Intn(len(paths))]
		require.NoError(t, Delete(tree, p))
		_, err := Resolve(tree, p)
		require.ErrorIs(t, err, ErrNotFound)
	}
}

func TestPath_HasPrefix(t *testing.T) {
	p := Path{"melee", "one_hand", "iron_sword"}
	assert.True(t, p.HasPrefix(Path{}))
	assert.True(t, p.HasPrefix(Path{"melee"}))
	assert.True(t, p.HasPrefix(p))
	assert.False(t, p.HasPrefix(Path{"ranged"}))
	assert.False(t, Path{"melee"}.HasPrefix(p))
}
