package typeinfo

import (
	"fmt"
	"reflect"

	"github.com/compozy/fixturegen/pkg/collection"
)

// ElementType returns the element type of a slice, array or sequence container.
// Container elements are read from the parameter of their Add method.
func ElementType(t reflect.Type) (reflect.Type, error) {
	switch {
	case t.Kind() == reflect.Slice, t.Kind() == reflect.Array:
		return t.Elem(), nil
	case collection.IsSequence(t):
		m, ok := reflect.PointerTo(t).MethodByName(collection.AddMethod)
		if !ok || m.Type.NumIn() != 2 {
			return nil, fmt.Errorf("cannot resolve element type of %s", t)
		}
		return m.Type.In(1), nil
	}
	return nil, fmt.Errorf("%s has no element type", t)
}

// KeyValueTypes returns the key and value types of a map or mapping container.
// Container types are read from the parameters of their Put method.
func KeyValueTypes(t reflect.Type) (key, value reflect.Type, err error) {
	switch {
	case t.Kind() == reflect.Map:
		return t.Key(), t.Elem(), nil
	case collection.IsMapping(t):
		m, ok := reflect.PointerTo(t).MethodByName(collection.PutMethod)
		if !ok || m.Type.NumIn() != 3 {
			return nil, nil, fmt.Errorf("cannot resolve key and value types of %s", t)
		}
		return m.Type.In(1), m.Type.In(2), nil
	}
	return nil, nil, fmt.Errorf("%s has no key and value types", t)
}
