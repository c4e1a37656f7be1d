package collection

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/utils"
)

// ErrUnordered is returned when a sorted container receives a type it cannot order.
var ErrUnordered = errors.New("type has no ordering")

var compareMethods = []string{"Compare", "Cmp"}

// comparatorFor orders values of t. Integers, floats and strings compare
// natively; other types need a Compare(T) int or Cmp(T) int method.
func comparatorFor(t reflect.Type) (utils.Comparator, error) {
	if t == nil {
		return nil, ErrUnordered
	}
	if fn, ok := compareMethod(t); ok {
		return func(a, b any) int {
			out := fn.Call([]reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)})
			return int(out[0].Int())
		}, nil
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b any) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b any) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b any) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a, b any) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnordered, t)
}

// compareMethod finds a value-receiver method func(T) int named Compare or Cmp.
func compareMethod(t reflect.Type) (reflect.Value, bool) {
	for _, name := range compareMethods {
		m, ok := t.MethodByName(name)
		if !ok {
			continue
		}
		mt := m.Type
		if mt.NumIn() == 2 && mt.In(1) == t && mt.NumOut() == 1 && mt.Out(0).Kind() == reflect.Int {
			return m.Func, true
		}
	}
	return reflect.Value{}, false
}
