package domain

import "strings"

// Path is a root-relative sequence of mapping keys
type Path []string

// ParsePath splits a slash separated path. Leading and trailing slashes
// are ignored; "" and "/" address the root.
func ParsePath(s string) Path {
	s = strings.Trim(s, "/")
	if s == "" {
		return Path{}
	}
	return strings.Split(s, "/")
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// Parent returns the path without its final key
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return append(Path{}, p[:len(p)-1]...)
}

// Last returns the final key, or "" for the root path
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a new path extended by keys
func (p Path) Child(keys ...string) Path {
	out := make(Path, 0, len(p)+len(keys))
	out = append(out, p...)
	return append(out, keys...)
}

// Equal compares two paths segment by segment
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is p or one of its ancestors
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && p[:len(prefix)].Equal(prefix)
}

// Resolve walks path from root. Every intermediate segment must exist and
// be a mapping; nothing is created.
func Resolve(root *Node, path Path) (*Node, error) {
	cur := root
	for i, seg := range path {
		if !cur.IsMap() {
			return nil, &PathError{Path: path, Segment: i, Err: ErrNotMapping}
		}
		next, ok := cur.Get(seg)
		if !ok {
			return nil, &PathError{Path: path, Segment: i, Err: ErrNotFound}
		}
		cur = next
	}
	return cur, nil
}

// resolveParent returns the mapping holding the final key of path
func resolveParent(root *Node, path Path) (*Node, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	parent, err := Resolve(root, path[:len(path)-1])
	if err != nil {
		if pe, ok := err.(*PathError); ok {
			pe.Path = path
		}
		return nil, err
	}
	if !parent.IsMap() {
		return nil, &PathError{Path: path, Segment: len(path) - 1, Err: ErrNotMapping}
	}
	return parent, nil
}

// SetExisting assigns value at path. The parent must already exist; only
// the final key is created or overwritten.
func SetExisting(root *Node, path Path, value *Node) error {
	parent, err := resolveParent(root, path)
	if err != nil {
		return err
	}
	parent.Set(path.Last(), value)
	return nil
}

// SetOrCreatePath assigns value at path, creating missing intermediate
// mappings. An existing intermediate that is not a mapping fails the call
// before anything is created.
func SetOrCreatePath(root *Node, path Path, value *Node) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if !root.IsMap() {
		return &PathError{Path: path, Segment: 0, Err: ErrNotMapping}
	}

	// Check the existing prefix first so a conflict leaves the tree untouched
	cur := root
	for i, seg := range path[:len(path)-1] {
		next, ok := cur.Get(seg)
		if !ok {
			break
		}
		if !next.IsMap() {
			return &PathError{Path: path, Segment: i, Err: ErrNotMapping}
		}
		cur = next
	}

	cur = root
	for _, seg := range path[:len(path)-1] {
		next, ok := cur.Get(seg)
		if !ok {
			next = NewMap()
			cur.Set(seg, next)
		}
		cur = next
	}
	cur.Set(path.Last(), value)
	return nil
}

// Delete removes the final key of path. The key must exist.
func Delete(root *Node, path Path) error {
	parent, err := resolveParent(root, path)
	if err != nil {
		return err
	}
	if !parent.Delete(path.Last()) {
		return &PathError{Path: path, Segment: len(path) - 1, Err: ErrNotFound}
	}
	return nil
}
