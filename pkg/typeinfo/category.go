// Package typeinfo classifies Go types into the categories that drive fixture
// synthesis and resolves the element, key and value types of collections.
package typeinfo

// Category is the closed set of type shapes the engine knows how to fill.
type Category int

const (
	Unsupported Category = iota
	Text
	Integral
	Floating
	Decimal
	Boolean
	Character
	Temporal
	Identifier
	Enumeration
	Complex
	Collection
	Map
	Array
	Pointer
)

var categoryNames = [...]string{
	Unsupported: "unsupported",
	Text:        "text",
	Integral:    "integral",
	Floating:    "floating",
	Decimal:     "decimal",
	Boolean:     "boolean",
	Character:   "character",
	Temporal:    "temporal",
	Identifier:  "identifier",
	Enumeration: "enumeration",
	Complex:     "complex",
	Collection:  "collection",
	Map:         "map",
	Array:       "array",
	Pointer:     "pointer",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}
