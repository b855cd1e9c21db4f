/*
File    : l/builtins/numeric.go
Author  : adapted from go-mix by Akash Maji
*/
package builtins

import (
	"math"

	"github.com/l-lang/l/objects"
)

func init() {
	register(&objects.Builtin{Name: "min", Call: biMin})
	register(&objects.Builtin{Name: "max", Call: biMax})
	register(&objects.Builtin{Name: "abs", Call: biAbs})
	register(&objects.Builtin{Name: "sqrt", Call: biSqrt})
	register(&objects.Builtin{Name: "pow", Call: biPow})
}

// numericResult reports an Integer when both inputs were Integer, and a
// Float otherwise, mirroring the checker's int,int->int / any-float->float
// arithmetic rule for these two-argument numeric helpers.
func numericResult(a, b objects.Value, f func(x, y float64) float64) (objects.Value, error) {
	af, ok := asFloat(a)
	if !ok {
		return nil, typeErr("numeric", 1, objects.IntType, a.Type())
	}
	bf, ok := asFloat(b)
	if !ok {
		return nil, typeErr("numeric", 2, objects.IntType, b.Type())
	}
	result := f(af, bf)
	if _, aInt := a.(*objects.Integer); aInt {
		if _, bInt := b.(*objects.Integer); bInt {
			return &objects.Integer{Value: int64(result)}, nil
		}
	}
	return &objects.Float{Value: result}, nil
}

func biMin(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("min", 2, len(args))
	}
	return numericResult(args[0], args[1], math.Min)
}

func biMax(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("max", 2, len(args))
	}
	return numericResult(args[0], args[1], math.Max)
}

func biAbs(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("abs", 1, len(args))
	}
	switch n := args[0].(type) {
	case *objects.Integer:
		if n.Value < 0 {
			return &objects.Integer{Value: -n.Value}, nil
		}
		return n, nil
	case *objects.Float:
		return &objects.Float{Value: math.Abs(n.Value)}, nil
	default:
		return nil, typeErr("abs", 1, objects.IntType, args[0].Type())
	}
}

func biSqrt(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, argErr("sqrt", 1, len(args))
	}
	f, ok := asFloat(args[0])
	if !ok {
		return nil, typeErr("sqrt", 1, objects.FloatType, args[0].Type())
	}
	return &objects.Float{Value: math.Sqrt(f)}, nil
}

func biPow(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, argErr("pow", 2, len(args))
	}
	return numericResult(args[0], args[1], math.Pow)
}
