package typeinfo

import (
	"runtime/debug"
	"strings"
	"sync"
)

// stdRoots are the first path elements of every standard library package.
// "vendor" covers the golang.org/x packages the standard library vendors.
var stdRoots = map[string]struct{}{
	"archive": {}, "bufio": {}, "bytes": {}, "cmp": {}, "compress": {},
	"container": {}, "context": {}, "crypto": {}, "database": {}, "debug": {},
	"embed": {}, "encoding": {}, "errors": {}, "expvar": {}, "flag": {},
	"fmt": {}, "go": {}, "hash": {}, "html": {}, "image": {},
	"index": {}, "internal": {}, "io": {}, "iter": {}, "log": {},
	"maps": {}, "math": {}, "mime": {}, "net": {}, "os": {},
	"path": {}, "plugin": {}, "reflect": {}, "regexp": {}, "runtime": {},
	"slices": {}, "sort": {}, "strconv": {}, "strings": {}, "structs": {},
	"sync": {}, "syscall": {}, "testing": {}, "text": {}, "time": {},
	"unicode": {}, "unique": {}, "unsafe": {}, "vendor": {}, "weak": {},
	"cmd": {},
}

var mainModule = sync.OnceValue(func() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Path
	}
	return ""
})

var userPackages sync.Map

// isUserPackage reports whether pkg is outside the standard library. Packages
// of the main module always count as user code, whatever their path.
func isUserPackage(pkg string) bool {
	if v, ok := userPackages.Load(pkg); ok {
		return v.(bool)
	}
	user := classifyPackage(pkg, mainModule())
	userPackages.Store(pkg, user)
	return user
}

func classifyPackage(pkg, module string) bool {
	switch {
	case pkg == "":
		return false
	case pkg == "main":
		return true
	case module != "" && (pkg == module || strings.HasPrefix(pkg, module+"/")):
		return true
	}
	first, _, _ := strings.Cut(pkg, "/")
	if strings.Contains(first, ".") {
		return true
	}
	_, std := stdRoots[first]
	return !std
}
