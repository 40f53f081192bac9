package domain

// NodeClass distinguishes editable records from navigable containers
type NodeClass int

const (
	ClassLeaf NodeClass = iota
	ClassBranch
)

func (c NodeClass) String() string {
	if c == ClassBranch {
		return "branch"
	}
	return "leaf"
}

// Classify reports whether n is a leaf (a mapping whose direct values are
// all scalars) or a branch (a mapping holding at least one mapping or list).
// Scalars and lists have nothing to navigate into and classify as leaves.
func Classify(n *Node) NodeClass {
	if !n.IsMap() {
		return ClassLeaf
	}
	class := ClassLeaf
	n.Each(func(_ string, v *Node) {
		if v.IsMap() || v.IsList() {
			class = ClassBranch
		}
	})
	return class
}

// IsRecord reports whether n is a mapping leaf, editable as a flat field set
func IsRecord(n *Node) bool {
	return n.IsMap() && Classify(n) == ClassLeaf
}
