package fixture

import (
	"errors"
	"reflect"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/collection"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

// sequence fills slices and sequence containers with itemCount elements and
// arrays in every slot. Elements share the container's path.
func (g *generation) sequence(t reflect.Type, cat typeinfo.Category, path attrpath.Path) (reflect.Value, bool, error) {
	elemType, err := typeinfo.ElementType(t)
	if err != nil {
		return reflect.Value{}, false, newTypeResolutionError(t, path, err)
	}
	if g.truncated(path, elemType) {
		return reflect.Value{}, false, nil
	}
	n := g.itemCount
	if cat == typeinfo.Array {
		n = t.Len()
	}
	c, err := collection.Make(t, n)
	if err != nil {
		return reflect.Value{}, false, newTypeResolutionError(t, path, err)
	}
	for i := range n {
		elem, err := g.valueOrZero(elemType, path)
		if err != nil {
			return reflect.Value{}, false, err
		}
		if cat == typeinfo.Array {
			c.Index(i).Set(elem)
			continue
		}
		if err := collection.Add(c, elem); err != nil {
			return reflect.Value{}, false, g.insertError(t, path, err)
		}
	}
	return c, true, nil
}

// mapping fills maps and mapping containers with itemCount pairs. Duplicate
// keys collapse.
func (g *generation) mapping(t reflect.Type, path attrpath.Path) (reflect.Value, bool, error) {
	keyType, valueType, err := typeinfo.KeyValueTypes(t)
	if err != nil {
		return reflect.Value{}, false, newTypeResolutionError(t, path, err)
	}
	if g.truncated(path, keyType) || g.truncated(path, valueType) {
		return reflect.Value{}, false, nil
	}
	c, err := collection.Make(t, g.itemCount)
	if err != nil {
		return reflect.Value{}, false, newTypeResolutionError(t, path, err)
	}
	for range g.itemCount {
		key, err := g.valueOrZero(keyType, path)
		if err != nil {
			return reflect.Value{}, false, err
		}
		val, err := g.valueOrZero(valueType, path)
		if err != nil {
			return reflect.Value{}, false, err
		}
		if err := collection.Put(c, key, val); err != nil {
			return reflect.Value{}, false, g.insertError(t, path, err)
		}
	}
	return c, true, nil
}

// truncated reports whether entries of type t would re-enter a struct type on
// the current path, in which case the whole container is left unset.
func (g *generation) truncated(path attrpath.Path, t reflect.Type) bool {
	base, ok := typeinfo.ComplexBase(t)
	if !ok || !g.visiting(base) {
		return false
	}
	g.log.Debug("cycle truncated in collection", "path", path.String(), "type", base.String())
	return true
}

func (g *generation) valueOrZero(t reflect.Type, path attrpath.Path) (reflect.Value, error) {
	v, ok, err := g.value(t, constraint.Set{}, path)
	if err != nil {
		return reflect.Value{}, err
	}
	if !ok {
		return reflect.Zero(t), nil
	}
	return v, nil
}

func (g *generation) insertError(t reflect.Type, path attrpath.Path, err error) error {
	if errors.Is(err, collection.ErrUnordered) {
		return newIncomparableKeyError(t, path, err)
	}
	return newTypeResolutionError(t, path, err)
}
