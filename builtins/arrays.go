/*
File    : l/builtins/arrays.go
Author  : adapted from go-mix by Akash Maji
*/
package builtins

import (
	"sort"

	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "push", Call: biPush})
	register(&objects.Builtin{Name: "pop", Call: biPop})
	register(&objects.Builtin{Name: "append", Call: biAppend})
	register(&objects.Builtin{Name: "reverse", Call: biReverse})
	register(&objects.Builtin{Name: "first", Call: biFirst})
	register(&objects.Builtin{Name: "last", Call: biLast})
	register(&objects.Builtin{Name: "slice", Call: biSlice})
	register(&objects.Builtin{Name: "flatten", Call: biFlatten})
	register(&objects.Builtin{Name: "unique", Call: biUnique})
	register(&objects.Builtin{Name: "sort", Call: biSort})
}

func asArray(name string, i int, v objects.Value) (*objects.Array, error) {
	arr, ok := v.(*objects.Array)
	if !ok {
		return nil, typeErr(name, i, objects.ArrayType, v.Type())
	}
	return arr, nil
}

// biPush returns a new array with value appended, leaving the argument
// array untouched (L arrays are evaluator-level Go slices, but builtins
// never mutate a caller's value in place since the callback has no
// binding back to the variable that held it).
func biPush(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("push", 2, len(args))
	}
	arr, err := asArray("push", 1, args[0])
	if err != nil {
		return nil, err
	}
	out := append(append([]objects.Value{}, arr.Elements...), args[1])
	return &objects.Array{Elements: out}, nil
}

// biPop returns a new array with the last element removed.
func biPop(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("pop", 1, len(args))
	}
	arr, err := asArray("pop", 1, args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, lerr.New(lerr.Runtime, "pop: array is empty")
	}
	out := append([]objects.Value{}, arr.Elements[:len(arr.Elements)-1]...)
	return &objects.Array{Elements: out}, nil
}

// biAppend concatenates two arrays.
func biAppend(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("append", 2, len(args))
	}
	a, err := asArray("append", 1, args[0])
	if err != nil {
		return nil, err
	}
	b, err := asArray("append", 2, args[1])
	if err != nil {
		return nil, err
	}
	out := append(append([]objects.Value{}, a.Elements...), b.Elements...)
	return &objects.Array{Elements: out}, nil
}

// biReverse returns a new array with elements in reverse order.
func biReverse(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("reverse", 1, len(args))
	}
	arr, err := asArray("reverse", 1, args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, len(arr.Elements))
	for i, e := range arr.Elements {
		out[len(out)-1-i] = e
	}
	return &objects.Array{Elements: out}, nil
}

// biFirst returns the first element of a non-empty array.
func biFirst(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("first", 1, len(args))
	}
	arr, err := asArray("first", 1, args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, lerr.New(lerr.Runtime, "first: array is empty")
	}
	return arr.Elements[0], nil
}

// biLast returns the last element of a non-empty array.
func biLast(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("last", 1, len(args))
	}
	arr, err := asArray("last", 1, args[0])
	if err != nil {
		return nil, err
	}
	if len(arr.Elements) == 0 {
		return nil, lerr.New(lerr.Runtime, "last: array is empty")
	}
	return arr.Elements[len(arr.Elements)-1], nil
}

// biSlice extracts arr[start:end], the array analogue of substring.
func biSlice(args []objects.Value) (objects.Value, error) {
	if len(args) != 3 {
		return nil, argErr("slice", 3, len(args))
	}
	arr, err := asArray("slice", 1, args[0])
	if err != nil {
		return nil, err
	}
	start, ok := args[1].(*objects.Integer)
	if !ok {
		return nil, typeErr("slice", 2, objects.IntType, args[1].Type())
	}
	end, ok := args[2].(*objects.Integer)
	if !ok {
		return nil, typeErr("slice", 3, objects.IntType, args[2].Type())
	}
	if start.Value < 0 || end.Value > int64(len(arr.Elements)) || start.Value > end.Value {
		return nil, lerr.New(lerr.Runtime, "slice: index out of range [%d:%d] of length %d", start.Value, end.Value, len(arr.Elements))
	}
	out := append([]objects.Value{}, arr.Elements[start.Value:end.Value]...)
	return &objects.Array{Elements: out}, nil
}

// biFlatten concatenates one level of nested arrays. A non-array element
// at the top level is kept as-is.
func biFlatten(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("flatten", 1, len(args))
	}
	arr, err := asArray("flatten", 1, args[0])
	if err != nil {
		return nil, err
	}
	out := make([]objects.Value, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		if inner, ok := e.(*objects.Array); ok {
			out = append(out, inner.Elements...)
		} else {
			out = append(out, e)
		}
	}
	return &objects.Array{Elements: out}, nil
}

// biUnique returns a new array with duplicate elements removed, comparing
// by String() form since Value has no native equality method.
func biUnique(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("unique", 1, len(args))
	}
	arr, err := asArray("unique", 1, args[0])
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(arr.Elements))
	out := make([]objects.Value, 0, len(arr.Elements))
	for _, e := range arr.Elements {
		key := string(e.Type()) + ":" + e.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, e)
	}
	return &objects.Array{Elements: out}, nil
}

// biSort sorts an array of ints, floats, or strings in ascending order.
// Mixed-type arrays and arrays of non-orderable values are a runtime
// error.
func biSort(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("sort", 1, len(args))
	}
	arr, err := asArray("sort", 1, args[0])
	if err != nil {
		return nil, err
	}
	out := append([]objects.Value{}, arr.Elements...)
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		if sortErr != nil {
			return false
		}
		less, e := lessValue(out[i], out[j])
		if e != nil {
			sortErr = e
		}
		return less
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return &objects.Array{Elements: out}, nil
}

func lessValue(a, b objects.Value) (bool, error) {
	switch av := a.(type) {
	case *objects.Integer:
		bv, ok := b.(*objects.Integer)
		if !ok {
			return false, lerr.New(lerr.Runtime, "sort: mixed element types %s and %s", a.Type(), b.Type())
		}
		return av.Value < bv.Value, nil
	case *objects.Float:
		bv, ok := b.(*objects.Float)
		if !ok {
			return false, lerr.New(lerr.Runtime, "sort: mixed element types %s and %s", a.Type(), b.Type())
		}
		return av.Value < bv.Value, nil
	case *objects.String:
		bv, ok := b.(*objects.String)
		if !ok {
			return false, lerr.New(lerr.Runtime, "sort: mixed element types %s and %s", a.Type(), b.Type())
		}
		return av.Value < bv.Value, nil
	default:
		return false, lerr.New(lerr.Runtime, "sort: element type %s is not orderable", a.Type())
	}
}
