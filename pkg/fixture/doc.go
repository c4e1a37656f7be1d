// Package fixture builds populated instances of arbitrary Go types for tests.
//
// Fields are filled with random values that honor the constraints declared in
// struct tags (see package constraint). Nested user-defined structs are
// generated recursively, and collections receive a configurable number of
// entries. Callers can pin individual fields by dotted attribute path:
//
//	person, err := fixture.Generate[Person](
//		fixture.WithOverrides(attrpath.Overrides{"Pet.Name": "Rex"}),
//		fixture.WithItemCount(3),
//	)
//
// Recursive type graphs are truncated: a field whose struct type is already
// being generated higher up the current path is left untouched.
package fixture
