/*
File    : l/builtins/core.go
Author  : adapted from go-mix by Akash Maji
*/
package builtins

import (
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "len", Call: biLen})
	register(&objects.Builtin{Name: "to_string", Call: biToString})
	register(&objects.Builtin{Name: "range", Call: biRange})
}

func argErr(name string, want int, got int) error {
	return lerr.New(lerr.Runtime, "wrong number of arguments to `%s`: got=%d, want=%d", name, got, want)
}

func typeErr(name string, i int, want, got objects.Type) error {
	return lerr.New(lerr.Runtime, "argument %d to `%s` must be %s, got %s", i, name, want, got)
}

// biLen returns the length of a string or array.
func biLen(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *objects.String:
		return &objects.Integer{Value: int64(len(v.Value))}, nil
	case *objects.Array:
		return &objects.Integer{Value: int64(len(v.Elements))}, nil
	default:
		return nil, lerr.New(lerr.Runtime, "argument to `len` not supported, got %s", args[0].Type())
	}
}

// biToString renders any value using its ordinary String() form.
func biToString(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("to_string", 1, len(args))
	}
	return &objects.String{Value: args[0].String()}, nil
}

// biRange builds the inclusive-start/exclusive-end integer array used by
// scenario 3 (`for i in range(1, 11)`): range(a, b) yields [a, a+1, ..., b-1].
func biRange(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("range", 2, len(args))
	}
	start, ok := args[0].(*objects.Integer)
	if !ok {
		return nil, typeErr("range", 1, objects.IntType, args[0].Type())
	}
	end, ok := args[1].(*objects.Integer)
	if !ok {
		return nil, typeErr("range", 2, objects.IntType, args[1].Type())
	}
	elems := make([]objects.Value, 0, end.Value-start.Value)
	for i := start.Value; i < end.Value; i++ {
		elems = append(elems, &objects.Integer{Value: i})
	}
	return &objects.Array{Elements: elems}, nil
}

// asFloat widens an Integer or Float argument to a float64, for the
// numeric helpers that accept either kind.
func asFloat(v objects.Value) (float64, bool) {
	switch n := v.(type) {
	case *objects.Integer:
		return float64(n.Value), true
	case *objects.Float:
		return n.Value, true
	default:
		return 0, false
	}
}
