package restree

// Lookup returns the value addressed by path. Absence is reported with ok=false, never
// as an error. The root path addresses the tree itself.
func Lookup(tree *Tree, path KeyPath) (any, bool) {
	if tree == nil {
		return nil, false
	}
	var current any = tree
	for _, seg := range path {
		node, ok := current.(*Tree)
		if !ok {
			return nil, false
		}
		if current, ok = node.Get(seg); !ok {
			return nil, false
		}
	}
	return current, true
}

// SetPath stores value at path, creating intermediate nodes as needed. It fails with a
// *MalformedTreeError when a leaf occupies a position that must be an internal node.
func SetPath(tree *Tree, path KeyPath, value any) error {
	if len(path) == 0 {
		return &MalformedTreeError{Reason: "cannot assign to the root"}
	}
	node := tree
	for i, seg := range path[:len(path)-1] {
		next, ok := node.Get(seg)
		if !ok {
			sub := New()
			node.Set(seg, sub)
			node = sub
			continue
		}
		sub, ok := next.(*Tree)
		if !ok {
			return &MalformedTreeError{Path: path[:i+1], Reason: "leaf where a mapping was required"}
		}
		node = sub
	}
	node.Set(path[len(path)-1], value)
	return nil
}
