/*
File    : l/eval/eval_operators.go
Author  : adapted from go-mix by Akash Maji
*/
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

func (e *Evaluator) evalBinary(ex *ast.BinaryExpr, env *scope.Scope) (objects.Value, Signal, error) {
	left, sig, err := e.evalExpr(ex.Left, env)
	if err != nil || sig != Normal {
		return left, sig, err
	}
	right, sig, err := e.evalExpr(ex.Right, env)
	if err != nil || sig != Normal {
		return right, sig, err
	}
	v, err := applyBinary(ex.Op, left, right)
	return v, Normal, err
}

// applyBinary dispatches a binary operator over two runtime values:
// arithmetic on mismatched numeric kinds is a runtime type error (no
// implicit int<->float coercion, unlike the checker's compatibility
// rule), and `+` auto-stringifies an int/float operand against a string
// operand.
func applyBinary(op string, left, right objects.Value) (objects.Value, error) {
	switch op {
	case "+":
		if isString(left) || isString(right) {
			return &objects.String{Value: stringify(left) + stringify(right)}, nil
		}
		return arith(op, left, right)
	case "-", "*", "/":
		return arith(op, left, right)
	case "%":
		li, lok := left.(*objects.Integer)
		ri, rok := right.(*objects.Integer)
		if !lok || !rok {
			return nil, lerr.New(lerr.Runtime, "%% requires two ints, got %s and %s", left.Type(), right.Type())
		}
		if ri.Value == 0 {
			return nil, lerr.New(lerr.Runtime, "division by zero")
		}
		return &objects.Integer{Value: li.Value % ri.Value}, nil
	case "==":
		return &objects.Bool{Value: valuesEqual(left, right)}, nil
	case "!=":
		return &objects.Bool{Value: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return compare(op, left, right)
	case "&&":
		lb, lok := left.(*objects.Bool)
		rb, rok := right.(*objects.Bool)
		if !lok || !rok {
			return nil, lerr.New(lerr.Runtime, "&& requires two bools, got %s and %s", left.Type(), right.Type())
		}
		return &objects.Bool{Value: lb.Value && rb.Value}, nil
	case "||":
		lb, lok := left.(*objects.Bool)
		rb, rok := right.(*objects.Bool)
		if !lok || !rok {
			return nil, lerr.New(lerr.Runtime, "|| requires two bools, got %s and %s", left.Type(), right.Type())
		}
		return &objects.Bool{Value: lb.Value || rb.Value}, nil
	default:
		return nil, lerr.New(lerr.Runtime, "unknown binary operator %s", op)
	}
}

func isString(v objects.Value) bool { return v.Type() == objects.StringType }

func stringify(v objects.Value) string { return v.String() }

func arith(op string, left, right objects.Value) (objects.Value, error) {
	li, lInt := left.(*objects.Integer)
	ri, rInt := right.(*objects.Integer)
	if lInt && rInt {
		switch op {
		case "+":
			return &objects.Integer{Value: li.Value + ri.Value}, nil
		case "-":
			return &objects.Integer{Value: li.Value - ri.Value}, nil
		case "*":
			return &objects.Integer{Value: li.Value * ri.Value}, nil
		case "/":
			if ri.Value == 0 {
				return nil, lerr.New(lerr.Runtime, "division by zero")
			}
			return &objects.Integer{Value: li.Value / ri.Value}, nil
		}
	}
	lf, lok := left.(*objects.Float)
	rf, rok := right.(*objects.Float)
	if !lok || !rok {
		return nil, lerr.New(lerr.Runtime, "operator %s requires matching numeric operands, got %s and %s", op, left.Type(), right.Type())
	}
	switch op {
	case "+":
		return &objects.Float{Value: lf.Value + rf.Value}, nil
	case "-":
		return &objects.Float{Value: lf.Value - rf.Value}, nil
	case "*":
		return &objects.Float{Value: lf.Value * rf.Value}, nil
	case "/":
		if rf.Value == 0 {
			return nil, lerr.New(lerr.Runtime, "division by zero")
		}
		return &objects.Float{Value: lf.Value / rf.Value}, nil
	default:
		return nil, lerr.New(lerr.Runtime, "unknown arithmetic operator %s", op)
	}
}

// asFloat widens an int or a float to float64, reporting false for any
// non-numeric value (a bool, an array). arith does not use it, so int
// paired with float there is still a type error; callers that accept
// mixed int/float operands use it to compare them as floats.
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

func valuesEqual(left, right objects.Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *objects.Integer:
		return l.Value == right.(*objects.Integer).Value
	case *objects.Float:
		return l.Value == right.(*objects.Float).Value
	case *objects.String:
		return l.Value == right.(*objects.String).Value
	case *objects.Bool:
		return l.Value == right.(*objects.Bool).Value
	case *objects.None:
		return true
	case *objects.Enum:
		r := right.(*objects.Enum)
		if l.EnumName != r.EnumName || l.Variant != r.Variant {
			return false
		}
		if l.Payload == nil || r.Payload == nil {
			return l.Payload == r.Payload
		}
		return valuesEqual(l.Payload, r.Payload)
	default:
		return false
	}
}

func compare(op string, left, right objects.Value) (objects.Value, error) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, lerr.New(lerr.Runtime, "comparison %s requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}
	var result bool
	switch op {
	case "<":
		result = lf < rf
	case "<=":
		result = lf <= rf
	case ">":
		result = lf > rf
	case ">=":
		result = lf >= rf
	}
	return &objects.Bool{Value: result}, nil
}

func (e *Evaluator) evalUnary(ex *ast.UnaryExpr, env *scope.Scope) (objects.Value, Signal, error) {
	right, sig, err := e.evalExpr(ex.Right, env)
	if err != nil || sig != Normal {
		return right, sig, err
	}
	switch ex.Op {
	case "!":
		b, ok := right.(*objects.Bool)
		if !ok {
			return nil, Normal, lerr.New(lerr.Runtime, "! requires a bool operand, got %s", right.Type())
		}
		return &objects.Bool{Value: !b.Value}, Normal, nil
	case "-":
		switch n := right.(type) {
		case *objects.Integer:
			return &objects.Integer{Value: -n.Value}, Normal, nil
		case *objects.Float:
			return &objects.Float{Value: -n.Value}, Normal, nil
		default:
			return nil, Normal, lerr.New(lerr.Runtime, "unary - requires a numeric operand, got %s", right.Type())
		}
	default:
		return nil, Normal, lerr.New(lerr.Runtime, "unknown unary operator %s", ex.Op)
	}
}

func (e *Evaluator) evalIndex(ex *ast.IndexExpr, env *scope.Scope) (objects.Value, Signal, error) {
	left, sig, err := e.evalExpr(ex.Left, env)
	if err != nil || sig != Normal {
		return left, sig, err
	}
	idx, sig, err := e.evalExpr(ex.Index, env)
	if err != nil || sig != Normal {
		return idx, sig, err
	}
	i, ok := idx.(*objects.Integer)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "index must be int, got %s", idx.Type())
	}
	switch l := left.(type) {
	case *objects.Array:
		if i.Value < 0 || i.Value >= int64(len(l.Elements)) {
			return nil, Normal, lerr.New(lerr.Runtime, "array index %d out of range [0:%d)", i.Value, len(l.Elements))
		}
		return l.Elements[i.Value], Normal, nil
	case *objects.String:
		if i.Value < 0 || i.Value >= int64(len(l.Value)) {
			return nil, Normal, lerr.New(lerr.Runtime, "string index %d out of range [0:%d)", i.Value, len(l.Value))
		}
		return &objects.String{Value: string(l.Value[i.Value])}, Normal, nil
	default:
		return nil, Normal, lerr.New(lerr.Runtime, "cannot index into %s", left.Type())
	}
}
