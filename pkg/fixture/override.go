package fixture

import (
	"fmt"
	"math"
	"reflect"
)

// assignOverride stores literal into field. nil clears the field; numbers are
// converted between numeric kinds when the value fits; untyped slices and maps,
// as decoded from JSON or YAML, are converted element by element; a value of a
// pointer field's element type is stored through a new pointer.
func assignOverride(field reflect.Value, literal any) error {
	ft := field.Type()
	if literal == nil {
		field.Set(reflect.Zero(ft))
		return nil
	}
	lv := reflect.ValueOf(literal)
	if lv.Type().AssignableTo(ft) {
		field.Set(lv)
		return nil
	}
	if isNumeric(lv.Kind()) && isNumeric(ft.Kind()) {
		converted, err := convertNumber(lv, ft)
		if err != nil {
			return err
		}
		field.Set(converted)
		return nil
	}
	if lv.Kind() == ft.Kind() && lv.CanConvert(ft) {
		field.Set(lv.Convert(ft))
		return nil
	}
	switch {
	case lv.Kind() == reflect.Slice && (ft.Kind() == reflect.Slice || ft.Kind() == reflect.Array):
		return assignElements(field, lv)
	case lv.Kind() == reflect.Map && ft.Kind() == reflect.Map:
		return assignEntries(field, lv)
	}
	if ft.Kind() == reflect.Pointer {
		elem := reflect.New(ft.Elem())
		if err := assignOverride(elem.Elem(), literal); err != nil {
			return err
		}
		field.Set(elem)
		return nil
	}
	return fmt.Errorf("cannot use %T as %s", literal, ft)
}

func assignElements(field, lv reflect.Value) error {
	ft := field.Type()
	n := lv.Len()
	var out reflect.Value
	if ft.Kind() == reflect.Array {
		if n != ft.Len() {
			return fmt.Errorf("cannot use %d elements as %s", n, ft)
		}
		out = reflect.New(ft).Elem()
	} else {
		out = reflect.MakeSlice(ft, n, n)
	}
	for i := range n {
		if err := assignOverride(out.Index(i), lv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	field.Set(out)
	return nil
}

func assignEntries(field, lv reflect.Value) error {
	ft := field.Type()
	out := reflect.MakeMapWithSize(ft, lv.Len())
	iter := lv.MapRange()
	for iter.Next() {
		key := reflect.New(ft.Key()).Elem()
		if err := assignOverride(key, iter.Key().Interface()); err != nil {
			return fmt.Errorf("key %v: %w", iter.Key(), err)
		}
		val := reflect.New(ft.Elem()).Elem()
		if err := assignOverride(val, iter.Value().Interface()); err != nil {
			return fmt.Errorf("value of %v: %w", iter.Key(), err)
		}
		out.SetMapIndex(key, val)
	}
	field.Set(out)
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// convertNumber converts v to t, refusing conversions that lose information.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	var f float64
	switch {
	case v.CanInt():
		f = float64(v.Int())
	case v.CanUint():
		f = float64(v.Uint())
	default:
		f = v.Float()
	}
	switch {
	case out.CanInt():
		var n int64
		switch {
		case v.CanInt():
			n = v.Int()
		case v.CanUint():
			if v.Uint() > math.MaxInt64 {
				return out, fmt.Errorf("%d overflows %s", v.Uint(), t)
			}
			n = int64(v.Uint())
		default:
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return out, fmt.Errorf("%v is not a %s", f, t)
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return out, fmt.Errorf("%d overflows %s", n, t)
		}
		out.SetInt(n)
	case out.CanUint():
		var n uint64
		switch {
		case v.CanInt():
			if v.Int() < 0 {
				return out, fmt.Errorf("%d overflows %s", v.Int(), t)
			}
			n = uint64(v.Int())
		case v.CanUint():
			n = v.Uint()
		default:
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return out, fmt.Errorf("%v is not a %s", f, t)
			}
			n = uint64(f)
		}
		if out.OverflowUint(n) {
			return out, fmt.Errorf("%d overflows %s", n, t)
		}
		out.SetUint(n)
	default:
		if out.OverflowFloat(f) {
			return out, fmt.Errorf("%v overflows %s", f, t)
		}
		out.SetFloat(f)
	}
	return out, nil
}
