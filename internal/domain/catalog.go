package domain

import "fmt"

// Document names of the fixed catalog
const (
	DocClasses       = "Classes"
	DocRaces         = "Races"
	DocSkills        = "Skills"
	DocRarities      = "Rarities"
	DocStatusEffects = "Status Effects"
	DocArmors        = "Armors"
	DocWeapons       = "Weapons"
	DocConsumables   = "Consumables"
	DocMaterials     = "Materials"
)

// SkillsContainer is the key under which skill entries live
const SkillsContainer = "skills"

// SkillsBase returns the mapping that holds skill entries: the skills
// container when present or when the document is empty, else the root.
func SkillsBase(root *Node) Path {
	if root == nil || root.Len() == 0 {
		return Path{SkillsContainer}
	}
	if nested, ok := root.Get(SkillsContainer); ok && nested.IsMap() {
		return Path{SkillsContainer}
	}
	return Path{}
}

// Groups lists the allowed groups of grouped documents
var Groups = []string{"playable", "non_playable"}

// Layout describes at which depth a document keeps its entries
type Layout int

const (
	// LayoutFlat keeps entries at the root: {key: entry}
	LayoutFlat Layout = iota
	// LayoutGrouped keeps entries one level down: {group: {key: entry}}
	LayoutGrouped
	// LayoutSkills keeps entries under the "skills" container
	LayoutSkills
	// LayoutNested is an arbitrary-depth category/slot tree browsed as a tree
	LayoutNested
)

func (l Layout) String() string {
	switch l {
	case LayoutGrouped:
		return "grouped"
	case LayoutSkills:
		return "skills"
	case LayoutNested:
		return "nested"
	default:
		return "flat"
	}
}

// DocumentSpec binds a document name to its file and layout
type DocumentSpec struct {
	Name    string
	RelPath string
	Layout  Layout
}

// Placement carries the user's container choices when creating an entry
type Placement struct {
	Group    string
	Category string
	Slot     string
}

// EntryPath returns where an entry with key lives in root for this document
func (d DocumentSpec) EntryPath(root *Node, p Placement, key string) Path {
	switch d.Layout {
	case LayoutGrouped:
		return Path{p.Group, key}
	case LayoutSkills:
		return SkillsBase(root).Child(key)
	case LayoutNested:
		return Path{p.Category, p.Slot, key}
	default:
		return Path{key}
	}
}

// Template returns the default field set of a new entry
func (d DocumentSpec) Template(displayName string) *Node {
	t := NewMap()
	switch d.Layout {
	case LayoutGrouped:
		t.Set("base_vit", Int(5))
		t.Set("base_str", Int(5))
		t.Set("base_dex", Int(5))
		t.Set("base_int", Int(5))
		t.Set("skills", NewList())
	case LayoutSkills:
		t.Set("name", String(displayName))
		t.Set("description", String(""))
		t.Set("ability_type", String("MAGICAL"))
		t.Set("type", String("DAMAGE"))
		t.Set("target", String("ENEMY"))
		t.Set("power", Int(10))
		t.Set("mp_cost", Int(0))
		t.Set("cooldown", Int(0))
	case LayoutNested:
		t.Set("name", String(displayName))
		t.Set("description", String(""))
		t.Set("value", Int(0))
		t.Set("rarity", String(""))
	default:
		t.Set("name", String(displayName))
		t.Set("description", String(""))
	}
	return t
}

// Catalog is the ordered set of documents the editor manages
type Catalog []DocumentSpec

// DefaultCatalog returns the game-data documents relative to a project root
func DefaultCatalog() Catalog {
	return Catalog{
		{Name: DocClasses, RelPath: "data/classes.json", Layout: LayoutGrouped},
		{Name: DocRaces, RelPath: "data/races.json", Layout: LayoutGrouped},
		{Name: DocSkills, RelPath: "data/skills.json", Layout: LayoutSkills},
		{Name: DocRarities, RelPath: "data/rarities.json", Layout: LayoutFlat},
		{Name: DocStatusEffects, RelPath: "data/status_effects.json", Layout: LayoutFlat},
		{Name: DocArmors, RelPath: "data/items/armors.json", Layout: LayoutNested},
		{Name: DocWeapons, RelPath: "data/items/weapons.json", Layout: LayoutNested},
		{Name: DocConsumables, RelPath: "data/items/consumables.json", Layout: LayoutFlat},
		{Name: DocMaterials, RelPath: "data/items/materials.json", Layout: LayoutFlat},
	}
}

// Lookup finds a document by name
func (c Catalog) Lookup(name string) (DocumentSpec, error) {
	for _, d := range c {
		if d.Name == name {
			return d, nil
		}
	}
	return DocumentSpec{}, fmt.Errorf("%w: %q", ErrUnknownDocument, name)
}

// Names returns document names in catalog order
func (c Catalog) Names() []string {
	names := make([]string, len(c))
	for i, d := range c {
		names[i] = d.Name
	}
	return names
}

// ValidGroup reports whether group is allowed for grouped documents
func ValidGroup(group string) bool {
	for _, g := range Groups {
		if g == group {
			return true
		}
	}
	return false
}
