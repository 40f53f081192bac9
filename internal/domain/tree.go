package domain

import "strings"

// TreeItem is one row of a nested document browsed as a tree
type TreeItem struct {
	Key      string
	Path     Path
	Leaf     bool
	Matched  bool
	Expanded bool
	Children []*TreeItem
	Parent   *TreeItem
}

// BuildTree mirrors the mapping structure of root. Only mapping values
// become rows; Leaf marks records. The returned item is the unnamed root.
func BuildTree(root *Node) *TreeItem {
	item := &TreeItem{Path: Path{}, Expanded: true}
	addChildren(item, root)
	return item
}

func addChildren(parent *TreeItem, n *Node) {
	n.Each(func(key string, child *Node) {
		if !child.IsMap() {
			return
		}
		item := &TreeItem{
			Key:    key,
			Path:   parent.Path.Child(key),
			Leaf:   IsRecord(child),
			Parent: parent,
		}
		parent.Children = append(parent.Children, item)
		addChildren(item, child)
	})
}

// Flatten returns the visible rows below the root, depth first
func (t *TreeItem) Flatten() []*TreeItem {
	var out []*TreeItem
	for _, c := range t.Children {
		c.flattenRecursive(&out)
	}
	return out
}

func (t *TreeItem) flattenRecursive(out *[]*TreeItem) {
	*out = append(*out, t)
	if t.Expanded {
		for _, c := range t.Children {
			c.flattenRecursive(out)
		}
	}
}

// Depth returns the number of ancestors below the root
func (t *TreeItem) Depth() int {
	depth := 0
	for cur := t.Parent; cur != nil && cur.Parent != nil; cur = cur.Parent {
		depth++
	}
	return depth
}

func (t *TreeItem) Toggle() {
	t.Expanded = !t.Expanded
}

func (t *TreeItem) Expand() {
	t.Expanded = true
}

func (t *TreeItem) Collapse() {
	t.Expanded = false
}

// Find returns the item at path, or nil
func (t *TreeItem) Find(path Path) *TreeItem {
	cur := t
	for _, seg := range path {
		var next *TreeItem
		for _, c := range cur.Children {
			if c.Key == seg {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// MatchTree marks the rows whose key contains query and expands every row
// that matches or has a matching descendant. An empty query resets the
// tree to fully collapsed. It returns the matching rows in tree order.
func MatchTree(root *TreeItem, query string) []*TreeItem {
	q := normalizeQuery(query)
	var hits []*TreeItem
	for _, c := range root.Children {
		matchItem(c, q, &hits)
	}
	return hits
}

// matchItem is a post-order walk; expansion is recorded as a side effect
func matchItem(t *TreeItem, q string, hits *[]*TreeItem) bool {
	t.Matched = q != "" && strings.Contains(strings.ToLower(t.Key), q)
	if t.Matched {
		*hits = append(*hits, t)
	}
	matched := t.Matched
	for _, c := range t.Children {
		if matchItem(c, q, hits) {
			matched = true
		}
	}
	t.Expanded = matched
	return matched
}
