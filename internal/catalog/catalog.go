// Package catalog holds the example types the preview CLI can generate.
package catalog

import (
	"reflect"
	"strings"
	"sync"

	"github.com/compozy/fixturegen/pkg/collection"
	"github.com/compozy/fixturegen/pkg/fixture"
)

// Entry describes one catalog type.
type Entry struct {
	Name        string
	Description string
	Type        reflect.Type
}

var registry = sync.OnceValue(func() *collection.SortedMap[string, Entry] {
	var m collection.SortedMap[string, Entry]
	for _, e := range []Entry{
		{"person", "person with pets and a cyclic friends list", reflect.TypeFor[Person]()},
		{"pet", "pet pointing back to its owner", reflect.TypeFor[Pet]()},
		{"book", "book with a patterned ISBN and a decimal price", reflect.TypeFor[Book]()},
		{"library", "constructor-built library with sorted, hashed, queued and linked containers", reflect.TypeFor[Library]()},
		{"node", "self-referencing tree node", reflect.TypeFor[Node]()},
		{"dummy", "one field of every supported shape", reflect.TypeFor[Dummy]()},
	} {
		if err := m.Put(e.Name, e); err != nil {
			panic(err)
		}
	}
	return &m
})

// All returns the catalog sorted by name.
func All() []Entry {
	m := registry()
	keys := m.Keys()
	out := make([]Entry, 0, len(keys))
	for _, k := range keys {
		e, _ := m.Get(k)
		out = append(out, e)
	}
	return out
}

// Lookup finds an entry by name, ignoring case.
func Lookup(name string) (Entry, bool) {
	return registry().Get(strings.ToLower(strings.TrimSpace(name)))
}

// Options registers the enums and constructors the catalog types rely on.
func Options() []fixture.Option {
	return []fixture.Option{
		fixture.WithEnum(StatusActive, StatusSuspended, StatusClosed),
		fixture.WithConstructor(NewLibrary),
	}
}
