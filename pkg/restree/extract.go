package restree

// ExtractLeafPaths returns the set of key paths reaching every leaf value of tree.
func ExtractLeafPaths(tree *Tree) PathSet {
	paths := make(PathSet)
	walk(tree, KeyPath{}, func(path KeyPath, leaf bool) {
		if leaf {
			paths.Add(path)
		}
	})
	return paths
}

// ExtractAllPaths returns the leaf paths plus the path of every internal node below
// the root.
func ExtractAllPaths(tree *Tree) PathSet {
	paths := make(PathSet)
	walk(tree, KeyPath{}, func(path KeyPath, _ bool) {
		paths.Add(path)
	})
	return paths
}

// Walk visits every node below the root depth-first in key order. A non-nil error from fn
// stops the walk and is returned.
func Walk(tree *Tree, fn func(path KeyPath, value any) error) error {
	if tree == nil {
		return nil
	}
	return walkValues(tree, KeyPath{}, fn)
}

func walkValues(t *Tree, prefix KeyPath, fn func(KeyPath, any) error) error {
	for _, k := range t.keys {
		v := t.children[k]
		path := prefix.Append(k)
		if err := fn(path, v); err != nil {
			return err
		}
		if sub, ok := v.(*Tree); ok {
			if err := walkValues(sub, path, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func walk(t *Tree, prefix KeyPath, visit func(KeyPath, bool)) {
	if t == nil {
		return
	}
	for _, k := range t.keys {
		path := prefix.Append(k)
		sub, ok := t.children[k].(*Tree)
		visit(path, !ok)
		if ok {
			walk(sub, path, visit)
		}
	}
}
