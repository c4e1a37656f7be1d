package attrpath

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Overrides maps attribute paths to literal field values. A path mapped to nil
// sets the field to its zero value. Keys that match no field are ignored.
type Overrides map[string]any

// Lookup returns the override for p using exact string equality.
func (o Overrides) Lookup(p Path) (any, bool) {
	if len(o) == 0 {
		return nil, false
	}
	v, ok := o[string(p)]
	return v, ok
}

// Set records value under p and returns o, allocating it when nil.
func (o Overrides) Set(p Path, value any) Overrides {
	if o == nil {
		o = make(Overrides)
	}
	o[string(p)] = value
	return o
}

// FromJSON flattens a JSON object into overrides keyed by dotted paths. Nested
// objects are descended into; arrays, scalars and null become leaf values.
func FromJSON(data []byte) (Overrides, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid override document")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("override document must be an object, got %s", doc.Type)
	}
	out := make(Overrides)
	flatten(out, Root, doc)
	return out, nil
}

func flatten(out Overrides, prefix Path, node gjson.Result) {
	node.ForEach(func(key, value gjson.Result) bool {
		p := prefix.Child(key.String())
		if value.IsObject() {
			flatten(out, p, value)
			return true
		}
		out[p.String()] = leafValue(value)
		return true
	})
}

func leafValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Null:
		return nil
	case gjson.Number:
		if v.Num == float64(v.Int()) {
			return v.Int()
		}
		return v.Float()
	default:
		return v.Value()
	}
}
