// Package attrpath builds the dotted attribute paths used to address fields of a
// generated graph and looks them up in caller-supplied override maps.
package attrpath

import (
	"fmt"
	"strings"
)

// Separator joins path segments.
const Separator = "."

// Path is a dotted attribute path. The empty path addresses the root object.
type Path string

// Root is the path of the top-level object.
const Root Path = ""

// Child appends a field name. At the root the name becomes the whole path.
func (p Path) Child(name string) Path {
	if p == Root {
		return Path(name)
	}
	return Path(string(p) + Separator + name)
}

func (p Path) String() string {
	return string(p)
}

// IsRoot reports whether p addresses the top-level object.
func (p Path) IsRoot() bool {
	return p == Root
}

// Parse validates s and returns it as a Path. Empty segments are rejected.
func Parse(s string) (Path, error) {
	if s == "" {
		return Root, nil
	}
	for i, seg := range strings.Split(s, Separator) {
		if seg == "" {
			return Root, fmt.Errorf("empty segment %d in path %q", i, s)
		}
	}
	return Path(s), nil
}
