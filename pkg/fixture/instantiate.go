package fixture

import (
	"fmt"
	"reflect"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

var errorType = reflect.TypeFor[error]()

// constructor is a registered function creating values of target.
type constructor struct {
	fn         reflect.Value
	target     reflect.Type
	returnsPtr bool
	returnsErr bool
	params     int
}

func newConstructor(fn any) (constructor, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
		return constructor{}, fmt.Errorf("constructor must be a function, got %T", fn)
	}
	ft := fv.Type()
	if ft.NumOut() < 1 || ft.NumOut() > 2 {
		return constructor{}, fmt.Errorf("constructor %s must return T or (T, error)", ft)
	}
	if ft.NumOut() == 2 && ft.Out(1) != errorType {
		return constructor{}, fmt.Errorf("second result of constructor %s must be error", ft)
	}
	target := ft.Out(0)
	ptr := target.Kind() == reflect.Pointer
	if ptr {
		target = target.Elem()
	}
	if target.Kind() != reflect.Struct {
		return constructor{}, fmt.Errorf("constructor %s must return a struct or a pointer to one", ft)
	}
	params := ft.NumIn()
	if ft.IsVariadic() {
		params--
	}
	return constructor{
		fn:         fv,
		target:     target,
		returnsPtr: ptr,
		returnsErr: ft.NumOut() == 2,
		params:     params,
	}, nil
}

// pickConstructor prefers a constructor without parameters, then the one with
// the fewest. Ties go to the first registered.
func pickConstructor(cs []constructor) constructor {
	best := cs[0]
	for _, c := range cs[1:] {
		if c.params < best.params {
			best = c
		}
	}
	return best
}

// instantiate returns an addressable value of t, created by its registered
// constructor or as the zero value.
func (g *generation) instantiate(t reflect.Type, path attrpath.Path) (reflect.Value, error) {
	cs := g.engine.constructors[t]
	if len(cs) == 0 {
		return reflect.New(t).Elem(), nil
	}
	c := pickConstructor(cs)
	args := make([]reflect.Value, c.params)
	for i := range c.params {
		arg, err := g.constructorArg(c.fn.Type().In(i), path)
		if err != nil {
			return reflect.Value{}, newInstantiationError(t, path, err)
		}
		args[i] = arg
	}
	out, err := call(c.fn, args)
	if err != nil {
		return reflect.Value{}, newInstantiationError(t, path, err)
	}
	if c.returnsErr && !out[1].IsNil() {
		return reflect.Value{}, newInstantiationError(t, path, out[1].Interface().(error))
	}
	if c.returnsPtr {
		if out[0].IsNil() {
			return reflect.Value{}, newInstantiationError(t, path, fmt.Errorf("constructor returned nil"))
		}
		return out[0].Elem(), nil
	}
	v := reflect.New(t).Elem()
	v.Set(out[0])
	return v, nil
}

// constructorArg synthesizes scalar parameters and passes zero values for the rest.
func (g *generation) constructorArg(t reflect.Type, path attrpath.Path) (reflect.Value, error) {
	switch g.engine.classifier.Classify(t) {
	case typeinfo.Text, typeinfo.Integral, typeinfo.Floating, typeinfo.Boolean:
		v, ok, err := g.value(t, constraint.Set{}, path)
		if err != nil {
			return reflect.Value{}, err
		}
		if ok {
			return v, nil
		}
	}
	return reflect.Zero(t), nil
}

func call(fn reflect.Value, args []reflect.Value) (out []reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("constructor panicked: %v", r)
		}
	}()
	return fn.Call(args), nil
}
