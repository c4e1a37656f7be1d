package typeinfo

import (
	"fmt"
	"reflect"

	"github.com/compozy/fixturegen/pkg/collection"
	"github.com/compozy/fixturegen/pkg/constraint"
)

// Enum is implemented by types that list their own values. The receiver is
// the zero value of the type.
type Enum interface {
	EnumValues() []any
}

var enumType = reflect.TypeFor[Enum]()

// Classifier maps types to categories. Enumerations may be registered
// explicitly; a Classifier must not be modified once shared.
type Classifier struct {
	enums map[reflect.Type][]reflect.Value
}

func NewClassifier() *Classifier {
	return &Classifier{enums: make(map[reflect.Type][]reflect.Value)}
}

// RegisterEnum records values as the declared members of their type, in order.
// All values must share one type.
func (c *Classifier) RegisterEnum(values ...any) error {
	if len(values) == 0 {
		return fmt.Errorf("enum registration needs at least one value")
	}
	t := reflect.TypeOf(values[0])
	if t == nil {
		return fmt.Errorf("enum values cannot be nil")
	}
	members := make([]reflect.Value, 0, len(values))
	for i, v := range values {
		if reflect.TypeOf(v) != t {
			return fmt.Errorf("enum value %d has type %T, want %s", i, v, t)
		}
		members = append(members, reflect.ValueOf(v))
	}
	c.enums[t] = members
	return nil
}

// EnumValues returns the declared members of an enumeration type.
func (c *Classifier) EnumValues(t reflect.Type) ([]reflect.Value, bool) {
	if members, ok := c.enums[t]; ok {
		return members, true
	}
	if !implementsEnum(t) {
		return nil, false
	}
	var raw []any
	if t.Implements(enumType) {
		raw = reflect.Zero(t).Interface().(Enum).EnumValues()
	} else {
		raw = reflect.New(t).Interface().(Enum).EnumValues()
	}
	members := make([]reflect.Value, 0, len(raw))
	for _, v := range raw {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || !rv.Type().ConvertibleTo(t) {
			continue
		}
		members = append(members, rv.Convert(t))
	}
	return members, true
}

func implementsEnum(t reflect.Type) bool {
	if t.Kind() == reflect.Interface || t.Kind() == reflect.Pointer {
		return false
	}
	return t.Implements(enumType) || reflect.PointerTo(t).Implements(enumType)
}

// Classify returns the category of t.
func (c *Classifier) Classify(t reflect.Type) Category {
	if t == nil {
		return Unsupported
	}
	if _, ok := c.enums[t]; ok || implementsEnum(t) {
		return Enumeration
	}
	if t == DecimalType {
		return Decimal
	}
	if _, ok := temporalKinds[t]; ok {
		return Temporal
	}
	if _, ok := identifierKinds[t]; ok {
		return Identifier
	}
	if collection.IsSequence(t) {
		return Collection
	}
	if collection.IsMapping(t) {
		return Map
	}
	switch t.Kind() {
	case reflect.String:
		return Text
	case reflect.Bool:
		return Boolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Integral
	case reflect.Float32, reflect.Float64:
		return Floating
	case reflect.Slice:
		return Collection
	case reflect.Map:
		return Map
	case reflect.Array:
		return Array
	case reflect.Pointer:
		return Pointer
	case reflect.Struct:
		if IsComplex(t) {
			return Complex
		}
	}
	return Unsupported
}

// ClassifyField refines Classify with the field's constraints: a rune field
// tagged as a character is Character rather than Integral.
func (c *Classifier) ClassifyField(t reflect.Type, set constraint.Set) Category {
	cat := c.Classify(t)
	if cat == Integral && t.Kind() == reflect.Int32 && set.Has(constraint.Rune) {
		return Character
	}
	return cat
}

// IsComplex reports whether t is a user-defined struct: an anonymous struct or
// a named struct declared outside the standard library.
func IsComplex(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct || isValueType(t) {
		return false
	}
	if t.Name() == "" {
		return true
	}
	return isUserPackage(t.PkgPath())
}

// ComplexBase dereferences pointers and returns the struct type when it is complex.
func ComplexBase(t reflect.Type) (reflect.Type, bool) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if IsComplex(t) {
		return t, true
	}
	return nil, false
}
