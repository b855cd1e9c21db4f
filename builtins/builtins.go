/*
File    : l/builtins/builtins.go
Author  : adapted from go-mix by Akash Maji
*/

// Package builtins implements the language's pure-function catalogue
// (len, to_string, range, string/array/numeric helpers, file I/O,
// gpu_*/parallel_* reductions, Result/Option helpers), registered in the
// teacher's objects.Builtin{Name, Callback} idiom (go-mix's
// objects/builtins.go and objects/math.go) but rewritten against L's
// Value interface rather than GoMixObject, and against L's closed
// built-in catalogue rather than GoMix's (no maps/sets/JSON/regex/HTTP).
package builtins

import "github.com/l-lang/l/objects"

// registry is populated by init() in this file's sibling source files
// (strings.go, arrays.go, numeric.go, io.go, reductions.go, result.go),
// each contributing one concern's worth of *objects.Builtin, mirroring
// the teacher's split across builtins.go/math.go.
var registry = map[string]*objects.Builtin{}

func register(b *objects.Builtin) {
	registry[b.Name] = b
}

// Lookup returns the builtin registered under name, and whether it
// exists. The evaluator consults this before ordinary variable/function
// resolution in call position, so a builtin wins over a user-defined
// function of the same name: builtin names are reserved at call time,
// not at bind time.
func Lookup(name string) (*objects.Builtin, bool) {
	b, ok := registry[name]
	return b, ok
}

// Names returns every registered builtin name, in no particular order;
// a caller that needs an order sorts the result itself.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
