package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind tags the shape of a Node
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is one value of a document tree. Mappings keep their keys in
// insertion order so a document saves back in the order it was read.
type Node struct {
	kind   Kind
	b      bool
	i      int64
	f      float64
	s      string
	items  []*Node
	fields *orderedmap.OrderedMap[string, *Node]
}

// NewMap returns an empty mapping node
func NewMap() *Node {
	return &Node{kind: KindMap, fields: orderedmap.New[string, *Node]()}
}

// NewList returns a list node holding items
func NewList(items ...*Node) *Node {
	return &Node{kind: KindList, items: items}
}

// Strings returns a list node of string items
func Strings(values ...string) *Node {
	items := make([]*Node, 0, len(values))
	for _, v := range values {
		items = append(items, String(v))
	}
	return NewList(items...)
}

// Null returns a JSON null node
func Null() *Node { return &Node{kind: KindNull} }

func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

func Int(v int64) *Node { return &Node{kind: KindInt, i: v} }

func Float(v float64) *Node { return &Node{kind: KindFloat, f: v} }

func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Kind returns the node's tag
func (n *Node) Kind() Kind { return n.kind }

func (n *Node) IsMap() bool { return n != nil && n.kind == KindMap }

func (n *Node) IsList() bool { return n != nil && n.kind == KindList }

func (n *Node) BoolValue() bool { return n.b }

func (n *Node) IntValue() int64 { return n.i }

func (n *Node) FloatValue() float64 { return n.f }

// StringValue returns the string payload; empty for non-string nodes
func (n *Node) StringValue() string {
	return n.s
}

// Items returns the elements of a list node
func (n *Node) Items() []*Node {
	return n.items
}

// Append adds items to a list node
func (n *Node) Append(items ...*Node) {
	n.items = append(n.items, items...)
}

// Len returns the number of keys of a mapping or items of a list
func (n *Node) Len() int {
	switch n.kind {
	case KindMap:
		return n.fields.Len()
	case KindList:
		return len(n.items)
	default:
		return 0
	}
}

// Get returns the child stored under key in a mapping
func (n *Node) Get(key string) (*Node, bool) {
	if !n.IsMap() {
		return nil, false
	}
	return n.fields.Get(key)
}

// Has reports whether a mapping contains key
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (n *Node) Set(key string, value *Node) {
	if !n.IsMap() {
		panic(fmt.Sprintf("domain: Set on %s node", n.kind))
	}
	n.fields.Set(key, value)
}

// Delete removes key from a mapping and reports whether it was present
func (n *Node) Delete(key string) bool {
	if !n.IsMap() {
		return false
	}
	_, ok := n.fields.Delete(key)
	return ok
}

// Keys returns mapping keys in document order
func (n *Node) Keys() []string {
	if !n.IsMap() {
		return nil
	}
	keys := make([]string, 0, n.fields.Len())
	for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every key/value pair of a mapping in document order
func (n *Node) Each(fn func(key string, value *Node)) {
	if !n.IsMap() {
		return
	}
	for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Clone returns a deep copy that shares nothing with n
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindMap:
		out := NewMap()
		n.Each(func(k string, v *Node) {
			out.Set(k, v.Clone())
		})
		return out
	case KindList:
		items := make([]*Node, len(n.items))
		for i, item := range n.items {
			items[i] = item.Clone()
		}
		return NewList(items...)
	default:
		c := *n
		return &c
	}
}

// Equal reports deep structural equality. Mapping key order is ignored.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindInt:
		return n.i == other.i
	case KindFloat:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	case KindList:
		if len(n.items) != len(other.items) {
			return false
		}
		for i := range n.items {
			if !n.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if n.fields.Len() != other.fields.Len() {
			return false
		}
		for pair := n.fields.Oldest(); pair != nil; pair = pair.Next() {
			ov, ok := other.fields.Get(pair.Key)
			if !ok || !pair.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts the node into plain Go values (map[string]any,
// []any, string, int64, float64, bool, nil).
func (n *Node) Interface() any {
	switch n.kind {
	case KindBool:
		return n.b
	case KindInt:
		return n.i
	case KindFloat:
		return n.f
	case KindString:
		return n.s
	case KindList:
		out := make([]any, len(n.items))
		for i, item := range n.items {
			out[i] = item.Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, n.fields.Len())
		n.Each(func(k string, v *Node) {
			out[k] = v.Interface()
		})
		return out
	default:
		return nil
	}
}

// Text renders the node as it appears in an edit box
func (n *Node) Text() string {
	switch n.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(n.b)
	case KindInt:
		return strconv.FormatInt(n.i, 10)
	case KindFloat:
		return formatFloat(n.f)
	case KindString:
		return n.s
	case KindList:
		parts := make([]string, len(n.items))
		for i, item := range n.items {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ", ")
	default:
		raw, err := n.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// formatFloat always keeps a fraction or exponent so a float reads back as
// a float.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
