package restree

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Tree is an internal node of a resource tree: an ordered mapping from segment to either
// a nested *Tree or a leaf value. The zero value is not usable; create trees with New.
type Tree struct {
	keys     []string
	children map[string]any
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{children: make(map[string]any)}
}

// Set stores value under key. A new key is appended to the key order; an existing key keeps
// its position. Nested maps must be passed as *Tree; use FromMap to convert decoded data.
func (t *Tree) Set(key string, value any) {
	if _, exists := t.children[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.children[key] = value
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	v, ok := t.children[key]
	return v, ok
}

// Delete removes key, keeping the order of the remaining keys.
func (t *Tree) Delete(key string) {
	if _, exists := t.children[key]; !exists {
		return
	}
	delete(t.children, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
}

// Keys returns the keys in insertion order.
func (t *Tree) Keys() []string {
	return slices.Clone(t.keys)
}

// Len returns the number of direct children.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.keys)
}

// Clone returns a deep copy. Leaf lists are copied as well.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	out := &Tree{
		keys:     slices.Clone(t.keys),
		children: make(map[string]any, len(t.children)),
	}
	for k, v := range t.children {
		out.children[k] = CloneValue(v)
	}
	return out
}

// Equal reports whether both trees have the same shape and leaf values.
// Key order is ignored.
func (t *Tree) Equal(other *Tree) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for k, v := range t.children {
		ov, ok := other.children[k]
		if !ok {
			return false
		}
		sub, isTree := v.(*Tree)
		osub, otherIsTree := ov.(*Tree)
		switch {
		case isTree != otherIsTree:
			return false
		case isTree:
			if !sub.Equal(osub) {
				return false
			}
		default:
			if !reflect.DeepEqual(v, ov) {
				return false
			}
		}
	}
	return true
}

// ToMap returns a plain nested map projection of the tree.
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any, len(t.children))
	for k, v := range t.children {
		if sub, ok := v.(*Tree); ok {
			out[k] = sub.ToMap()
			continue
		}
		out[k] = CloneValue(v)
	}
	return out
}

// FromMap converts decoded generic data into a tree. Nested map[string]any and
// map[any]any values become subtrees; keys are inserted in sorted order since Go maps
// carry no order of their own.
func FromMap(data map[string]any) (*Tree, error) {
	return fromMap(data, KeyPath{})
}

func fromMap(data map[string]any, path KeyPath) (*Tree, error) {
	t := New()
	for _, k := range slices.Sorted(maps.Keys(data)) {
		child, err := fromValue(data[k], path.Append(k))
		if err != nil {
			return nil, err
		}
		t.Set(k, child)
	}
	return t, nil
}

func fromValue(v any, path KeyPath) (any, error) {
	switch val := v.(type) {
	case map[string]any:
		return fromMap(val, path)
	case map[any]any:
		converted := make(map[string]any, len(val))
		for k, item := range val {
			key, ok := k.(string)
			if !ok {
				return nil, &MalformedTreeError{Path: path, Reason: fmt.Sprintf("non-string key %v", k)}
			}
			converted[key] = item
		}
		return fromMap(converted, path)
	case *Tree:
		return val.Clone(), nil
	default:
		return CloneValue(val), nil
	}
}

// CloneValue deep-copies leaf lists and subtrees; scalars are returned as is.
func CloneValue(v any) any {
	switch val := v.(type) {
	case *Tree:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// IsLeaf reports whether v is a leaf value rather than an internal node.
func IsLeaf(v any) bool {
	_, ok := v.(*Tree)
	return !ok
}
