package domain

import (
	"sort"
	"strings"
)

// FieldRole selects how a field is presented and edited
type FieldRole int

const (
	RoleText FieldRole = iota
	RoleBool
	RoleNumber
	RoleList
	RoleRarity
	RoleElement
	RoleElementList
	RoleNested
)

func (r FieldRole) String() string {
	switch r {
	case RoleBool:
		return "bool"
	case RoleNumber:
		return "number"
	case RoleList:
		return "list"
	case RoleRarity:
		return "rarity"
	case RoleElement:
		return "element"
	case RoleElementList:
		return "element-list"
	case RoleNested:
		return "nested"
	default:
		return "text"
	}
}

// Editable reports whether raw text edits are accepted for the role
func (r FieldRole) Editable() bool {
	return r != RoleNested
}

var elementKeys = map[string]bool{
	"element":       true,
	"elements":      true,
	"elemental":     true,
	"elements_list": true,
}

// Field is one key/value pair of a record
type Field struct {
	Key   string
	Value *Node
	Role  FieldRole
	Text  string
}

// RoleFor picks the role of a field from its key name, then its value kind
func RoleFor(key string, value *Node) FieldRole {
	lower := strings.ToLower(key)
	if lower == "rarity" {
		return RoleRarity
	}
	if elementKeys[lower] {
		if value.IsList() {
			return RoleElementList
		}
		return RoleElement
	}

	switch value.Kind() {
	case KindBool:
		return RoleBool
	case KindInt, KindFloat:
		return RoleNumber
	case KindList:
		return RoleList
	case KindMap:
		return RoleNested
	default:
		return RoleText
	}
}

// RecordFields lists the fields of a mapping in document order
func RecordFields(record *Node) []Field {
	var fields []Field
	record.Each(func(key string, value *Node) {
		fields = append(fields, Field{
			Key:   key,
			Value: value,
			Role:  RoleFor(key, value),
			Text:  value.Text(),
		})
	})
	return fields
}

// EditResult reports which keys an ApplyEdits call touched
type EditResult struct {
	Changed []string
	Skipped []string
}

// ApplyEdits coerces raw text per key against the value currently stored
// under that key. Unknown keys and nested mappings are skipped.
func ApplyEdits(record *Node, edits map[string]string) EditResult {
	var res EditResult
	// Walk in document order so results are deterministic
	for _, key := range record.Keys() {
		raw, ok := edits[key]
		if !ok {
			continue
		}
		orig, _ := record.Get(key)
		if !RoleFor(key, orig).Editable() {
			res.Skipped = append(res.Skipped, key)
			continue
		}
		next := Coerce(orig, raw)
		if !next.Equal(orig) {
			record.Set(key, next)
			res.Changed = append(res.Changed, key)
		}
	}
	var unknown []string
	for key := range edits {
		if !record.Has(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	res.Skipped = append(res.Skipped, unknown...)
	return res
}
