package collection

import (
	"fmt"
	"reflect"
)

// Method names the factory calls on containers.
const (
	AddMethod = "Add"
	PutMethod = "Put"
)

var (
	sequenceType = reflect.TypeFor[Sequence]()
	mappingType  = reflect.TypeFor[Mapping]()
	errorType    = reflect.TypeFor[error]()
)

// IsSequence reports whether t is one of the sequence containers of this package.
func IsSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(sequenceType)
}

// IsMapping reports whether t is one of the mapping containers of this package.
func IsMapping(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && reflect.PointerTo(t).Implements(mappingType)
}

// Make returns a new, addressable value of the collection type t sized for n entries:
// a slice with capacity n, a map sized for n, a zero array, or a zero container.
func Make(t reflect.Type, n int) (reflect.Value, error) {
	if n < 0 {
		return reflect.Value{}, fmt.Errorf("negative size %d", n)
	}
	switch {
	case t.Kind() == reflect.Slice:
		v := reflect.New(t).Elem()
		v.Set(reflect.MakeSlice(t, 0, n))
		return v, nil
	case t.Kind() == reflect.Map:
		v := reflect.New(t).Elem()
		v.Set(reflect.MakeMapWithSize(t, n))
		return v, nil
	case t.Kind() == reflect.Array, IsSequence(t), IsMapping(t):
		return reflect.New(t).Elem(), nil
	}
	return reflect.Value{}, fmt.Errorf("%s is not a collection type", t)
}

// Add appends elem to the slice or sequence container c. c must be addressable.
func Add(c, elem reflect.Value) error {
	if c.Kind() == reflect.Slice {
		c.Set(reflect.Append(c, elem))
		return nil
	}
	if !IsSequence(c.Type()) {
		return fmt.Errorf("%s is not a sequence", c.Type())
	}
	return call(c, AddMethod, elem)
}

// Put stores key and value in the map or mapping container c. c must be addressable.
func Put(c, key, value reflect.Value) error {
	if c.Kind() == reflect.Map {
		if c.IsNil() {
			c.Set(reflect.MakeMap(c.Type()))
		}
		c.SetMapIndex(key, value)
		return nil
	}
	if !IsMapping(c.Type()) {
		return fmt.Errorf("%s is not a mapping", c.Type())
	}
	return call(c, PutMethod, key, value)
}

func call(c reflect.Value, name string, args ...reflect.Value) error {
	if !c.CanAddr() {
		return fmt.Errorf("%s value is not addressable", c.Type())
	}
	m := c.Addr().MethodByName(name)
	if !m.IsValid() {
		return fmt.Errorf("%s has no %s method", c.Type(), name)
	}
	out := m.Call(args)
	if len(out) == 1 && out[0].Type().Implements(errorType) && !out[0].IsNil() {
		return out[0].Interface().(error)
	}
	return nil
}
