/*
File    : l/builtins/strings.go
Author  : adapted from go-mix by Akash Maji
*/
package builtins

import (
	"strings"

	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "split", Call: biSplit})
	register(&objects.Builtin{Name: "join", Call: biJoin})
	register(&objects.Builtin{Name: "contains", Call: biContains})
	register(&objects.Builtin{Name: "substring", Call: biSubstring})
}

// biSplit splits a string on a separator, returning an array of strings.
func biSplit(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("split", 2, len(args))
	}
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, typeErr("split", 1, objects.StringType, args[0].Type())
	}
	sep, ok := args[1].(*objects.String)
	if !ok {
		return nil, typeErr("split", 2, objects.StringType, args[1].Type())
	}
	parts := strings.Split(s.Value, sep.Value)
	elems := make([]objects.Value, len(parts))
	for i, p := range parts {
		elems[i] = &objects.String{Value: p}
	}
	return &objects.Array{Elements: elems}, nil
}

// biJoin concatenates an array of strings with a separator.
func biJoin(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("join", 2, len(args))
	}
	arr, ok := args[0].(*objects.Array)
	if !ok {
		return nil, typeErr("join", 1, objects.ArrayType, args[0].Type())
	}
	sep, ok := args[1].(*objects.String)
	if !ok {
		return nil, typeErr("join", 2, objects.StringType, args[1].Type())
	}
	parts := make([]string, len(arr.Elements))
	for i, e := range arr.Elements {
		s, ok := e.(*objects.String)
		if !ok {
			return nil, lerr.New(lerr.Runtime, "join: element %d is not a string, got %s", i, e.Type())
		}
		parts[i] = s.Value
	}
	return &objects.String{Value: strings.Join(parts, sep.Value)}, nil
}

// biContains reports whether a string contains a substring.
func biContains(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("contains", 2, len(args))
	}
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, typeErr("contains", 1, objects.StringType, args[0].Type())
	}
	needle, ok := args[1].(*objects.String)
	if !ok {
		return nil, typeErr("contains", 2, objects.StringType, args[1].Type())
	}
	return &objects.Bool{Value: strings.Contains(s.Value, needle.Value)}, nil
}

// biSubstring extracts s[start:end] by byte offset, matching the
// evaluator's one-character-substring indexing convention scaled up to
// a range.
func biSubstring(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, argErr("substring", 3, len(args))
	}
	s, ok := args[0].(*objects.String)
	if !ok {
		return nil, typeErr("substring", 1, objects.StringType, args[0].Type())
	}
	start, ok := args[1].(*objects.Integer)
	if !ok {
		return nil, typeErr("substring", 2, objects.IntType, args[1].Type())
	}
	end, ok := args[2].(*objects.Integer)
	if !ok {
		return nil, typeErr("substring", 3, objects.IntType, args[2].Type())
	}
	if start.Value < 0 || end.Value > int64(len(s.Value)) || start.Value > end.Value {
		return nil, lerr.New(lerr.Runtime, "substring: index out of range [%d:%d] of length %d", start.Value, end.Value, len(s.Value))
	}
	return &objects.String{Value: s.Value[start.Value:end.Value]}, nil
}
