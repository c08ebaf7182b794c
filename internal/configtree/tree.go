package configtree

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Tree is an immutable, hierarchically keyed configuration value store.
type Tree interface {
	// Origin names the source the tree was parsed from, for diagnostics.
	Origin() string
	// HasPath reports whether path exists and holds a non-null value.
	HasPath(path string) bool
	GetString(path string) (string, error)
	GetInt(path string) (int, error)
	// GetConfigList reads a list of objects as subtrees.
	GetConfigList(path string) ([]Tree, error)
}

// valueTree is the cty-backed Tree implementation shared by every loader.
type valueTree struct {
	origin   string
	prefix   string
	root     cty.Value
	literals literals
}

// New wraps an object or map value as a Tree.
func New(origin string, root cty.Value) (Tree, error) {
	return newTree(origin, root, nil)
}

func newTree(origin string, root cty.Value, lits literals) (Tree, error) {
	if root == cty.NilVal || root.IsNull() {
		return Empty(origin), nil
	}
	ty := root.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("%s: top level must be an object, got %s", origin, ty.FriendlyName())
	}
	return &valueTree{origin: origin, root: root, literals: lits}, nil
}

// Empty returns a tree with no paths, used when no configuration exists.
func Empty(origin string) Tree {
	return &valueTree{origin: origin, root: cty.EmptyObjectVal}
}

func (t *valueTree) Origin() string {
	return t.origin
}

func (t *valueTree) HasPath(path string) bool {
	_, err := t.lookup(path)
	return err == nil
}

func (t *valueTree) GetString(path string) (string, error) {
	v, err := t.lookup(path)
	if err != nil {
		return "", err
	}
	if !v.Type().IsPrimitiveType() {
		return "", t.pathError(path, fmt.Errorf("%w: expected string, got %s", ErrWrongType, v.Type().FriendlyName()))
	}
	if v.Type().Equals(cty.Number) {
		if text, ok := t.literals[t.join(path)]; ok {
			return text, nil
		}
	}
	str, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", t.pathError(path, fmt.Errorf("%w: %v", ErrWrongType, err))
	}
	return str.AsString(), nil
}

func (t *valueTree) GetInt(path string) (int, error) {
	v, err := t.lookup(path)
	if err != nil {
		return 0, err
	}
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, t.pathError(path, fmt.Errorf("%w: expected number, got %s", ErrWrongType, v.Type().FriendlyName()))
	}
	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return 0, t.pathError(path, fmt.Errorf("%w: %v", ErrWrongType, err))
	}
	return out, nil
}

func (t *valueTree) GetConfigList(path string) ([]Tree, error) {
	v, err := t.lookup(path)
	if err != nil {
		return nil, err
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		return nil, t.pathError(path, fmt.Errorf("%w: expected list, got %s", ErrWrongType, ty.FriendlyName()))
	}

	full := t.join(path)
	subtrees := make([]Tree, 0, v.LengthInt())
	i := 0
	for it := v.ElementIterator(); it.Next(); i++ {
		_, elem := it.Element()
		if elem.IsNull() || !(elem.Type().IsObjectType() || elem.Type().IsMapType()) {
			return nil, t.pathError(path, fmt.Errorf("%w: element %d is not an object", ErrWrongType, i))
		}
		subtrees = append(subtrees, &valueTree{
			origin:   t.origin,
			prefix:   elemPath(full, i),
			root:     elem,
			literals: t.literals,
		})
	}
	return subtrees, nil
}

// lookup walks the dot-separated path from the root value.
func (t *valueTree) lookup(path string) (cty.Value, error) {
	if path == "" {
		return cty.NilVal, t.pathError(path, ErrMissing)
	}
	v := t.root
	for _, seg := range strings.Split(path, ".") {
		if seg == "" || v.IsNull() || !v.IsKnown() {
			return cty.NilVal, t.pathError(path, ErrMissing)
		}
		ty := v.Type()
		switch {
		case ty.IsObjectType():
			if !ty.HasAttribute(seg) {
				return cty.NilVal, t.pathError(path, ErrMissing)
			}
			v = v.GetAttr(seg)
		case ty.IsMapType():
			key := cty.StringVal(seg)
			if !v.HasIndex(key).True() {
				return cty.NilVal, t.pathError(path, ErrMissing)
			}
			v = v.Index(key)
		default:
			return cty.NilVal, t.pathError(path, ErrMissing)
		}
	}
	if v.IsNull() || !v.IsKnown() {
		return cty.NilVal, t.pathError(path, ErrMissing)
	}
	return v, nil
}

func (t *valueTree) join(path string) string {
	if t.prefix == "" {
		return path
	}
	return t.prefix + "." + path
}

func (t *valueTree) pathError(path string, err error) error {
	return &PathError{Origin: t.origin, Path: t.join(path), Err: err}
}
