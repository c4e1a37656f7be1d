package fixture

import (
	"reflect"

	"github.com/compozy/fixturegen/pkg/attrpath"
	"github.com/compozy/fixturegen/pkg/constraint"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

type boundField struct {
	field reflect.StructField
	value reflect.Value
}

// generateComplex instantiates t and fills its fields. t stays visited for the
// duration of the walk.
func (g *generation) generateComplex(t reflect.Type, path attrpath.Path) (reflect.Value, error) {
	v, err := g.instantiate(t, path)
	if err != nil {
		return reflect.Value{}, err
	}
	g.visit(t)
	defer g.leave(t)
	for _, bf := range collectFields(v, map[reflect.Type]bool{t: true}) {
		if err := g.fillField(t, bf, path); err != nil {
			return reflect.Value{}, err
		}
	}
	return v, nil
}

// collectFields lists the exported fields of v, followed by the fields of its
// embedded user-defined structs. Nil embedded pointers are allocated.
func collectFields(v reflect.Value, seen map[reflect.Type]bool) []boundField {
	t := v.Type()
	var (
		out       []boundField
		ancestors []reflect.Value
	)
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Anonymous {
			if anc, ok := embeddedStruct(v.Field(i), f, seen); ok {
				ancestors = append(ancestors, anc)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		out = append(out, boundField{field: f, value: v.Field(i)})
	}
	for _, anc := range ancestors {
		out = append(out, collectFields(anc, seen)...)
	}
	return out
}

func embeddedStruct(fv reflect.Value, f reflect.StructField, seen map[reflect.Type]bool) (reflect.Value, bool) {
	if constraint.Skipped(f) {
		return reflect.Value{}, false
	}
	ft := f.Type
	ptr := ft.Kind() == reflect.Pointer
	if ptr {
		ft = ft.Elem()
	}
	if !typeinfo.IsComplex(ft) || seen[ft] {
		return reflect.Value{}, false
	}
	if ptr {
		if fv.IsNil() {
			if !fv.CanSet() {
				return reflect.Value{}, false
			}
			fv.Set(reflect.New(ft))
		}
		fv = fv.Elem()
	}
	seen[ft] = true
	return fv, true
}

func (g *generation) fillField(owner reflect.Type, bf boundField, parent attrpath.Path) error {
	f, fv := bf.field, bf.value
	if constraint.Skipped(f) || !fv.CanSet() {
		return nil
	}
	path := parent.Child(f.Name)
	if base, ok := typeinfo.ComplexBase(f.Type); ok && g.visiting(base) {
		g.log.Debug("cycle truncated", "path", path.String(), "type", base.String())
		return nil
	}
	if literal, ok := g.overrides.Lookup(path); ok {
		if err := assignOverride(fv, literal); err != nil {
			return newOverrideMismatchError(f.Type, path, err)
		}
		if !g.engine.cfg.Generation.StrictCycleGuard {
			g.leave(owner)
		}
		return nil
	}
	if !unset(fv) {
		return nil
	}
	set, err := constraint.Extract(f)
	if err != nil {
		return newConstraintInvalidError(f.Type, path, err)
	}
	v, ok, err := g.value(f.Type, set, path)
	if err != nil {
		return err
	}
	if ok {
		fv.Set(v)
	}
	return nil
}

// unset reports whether a field still needs a value. Booleans and numbers are
// always regenerated.
func unset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return v.IsNil()
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return v.IsZero()
	}
}
