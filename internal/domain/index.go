package domain

import "strings"

// IndexEntry is one selectable row of a document listing
type IndexEntry struct {
	Label string
	Path  Path
}

// BuildIndex lists the entries of a document for its layout. Grouped
// documents label entries "group:key"; nested documents list every mapping
// without nested mappings, with its slash path as the label.
func BuildIndex(layout Layout, root *Node) []IndexEntry {
	var entries []IndexEntry

	switch layout {
	case LayoutGrouped:
		root.Each(func(group string, members *Node) {
			members.Each(func(key string, _ *Node) {
				entries = append(entries, IndexEntry{
					Label: group + ":" + key,
					Path:  Path{group, key},
				})
			})
		})

	case LayoutSkills:
		base := SkillsBase(root)
		scan, err := Resolve(root, base)
		if err != nil {
			break
		}
		scan.Each(func(key string, _ *Node) {
			entries = append(entries, IndexEntry{Label: key, Path: base.Child(key)})
		})

	case LayoutNested:
		collectRecords(root, Path{}, &entries)

	default:
		root.Each(func(key string, _ *Node) {
			entries = append(entries, IndexEntry{Label: key, Path: Path{key}})
		})
	}

	return entries
}

func collectRecords(n *Node, at Path, entries *[]IndexEntry) {
	n.Each(func(key string, child *Node) {
		if !child.IsMap() {
			return
		}
		p := at.Child(key)
		if !hasMapping(child) {
			*entries = append(*entries, IndexEntry{Label: p.String(), Path: p})
			return
		}
		collectRecords(child, p, entries)
	})
}

// hasMapping reports whether any direct value of n is a mapping. Records
// holding lists still count as entries even though they classify as
// branches.
func hasMapping(n *Node) bool {
	found := false
	n.Each(func(_ string, v *Node) {
		if v.IsMap() {
			found = true
		}
	})
	return found
}

// FilterIndex returns a fresh slice of the entries whose label contains
// query, ignoring case. An empty query returns every entry.
func FilterIndex(entries []IndexEntry, query string) []IndexEntry {
	q := normalizeQuery(query)
	out := make([]IndexEntry, 0, len(entries))
	for _, e := range entries {
		if q == "" || strings.Contains(strings.ToLower(e.Label), q) {
			out = append(out, e)
		}
	}
	return out
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
