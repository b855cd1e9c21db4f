/*
File    : l/eval/eval_controls.go
Author  : adapted from go-mix by Akash Maji
*/
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

// evalIf: truthiness is false == Bool(false) or None; everything else is
// true. No else-branch returns none.
func (e *Evaluator) evalIf(ex *ast.IfExpr, env *scope.Scope) (objects.Value, Signal, error) {
	cond, sig, err := e.evalExpr(ex.Condition, env)
	if err != nil || sig != Normal {
		return cond, sig, err
	}
	if objects.Truthy(cond) {
		return e.evalBlock(ex.Then, scope.NewScope(env))
	}
	if ex.Else == nil {
		return &objects.None{}, Normal, nil
	}
	return e.evalExpr(ex.Else, env)
}

// evalWhile re-evaluates the condition each iteration; Break terminates,
// Continue restarts. Each iteration's body runs in its own child frame so
// lets made inside the body do not leak across iterations.
func (e *Evaluator) evalWhile(ex *ast.WhileExpr, env *scope.Scope) (objects.Value, Signal, error) {
	for {
		cond, sig, err := e.evalExpr(ex.Condition, env)
		if err != nil || sig != Normal {
			return cond, sig, err
		}
		if !objects.Truthy(cond) {
			break
		}
		body, sig, err := e.evalBlock(ex.Body, scope.NewScope(env))
		if err != nil {
			return nil, Normal, err
		}
		switch sig {
		case Break:
			return &objects.None{}, Normal, nil
		case Return:
			return body, Return, nil
		case Continue, Normal:
			// fall through to next iteration
		}
	}
	return &objects.None{}, Normal, nil
}

// evalFor iterates an array or string (one-character strings per
// element); the loop variable lives in a frame nested in env so it never
// touches any outer binding of the same name, and that frame is simply
// discarded on exit -- restoring the prior binding for free.
func (e *Evaluator) evalFor(ex *ast.ForExpr, env *scope.Scope) (objects.Value, Signal, error) {
	iterable, sig, err := e.evalExpr(ex.Iterable, env)
	if err != nil || sig != Normal {
		return iterable, sig, err
	}
	var elems []objects.Value
	switch it := iterable.(type) {
	case *objects.Array:
		elems = it.Elements
	case *objects.String:
		elems = make([]objects.Value, len(it.Value))
		for i := 0; i < len(it.Value); i++ {
			elems[i] = &objects.String{Value: string(it.Value[i])}
		}
	default:
		return nil, Normal, lerr.New(lerr.Runtime, "for loop requires an array or string, got %s", iterable.Type())
	}

	loopEnv := scope.NewScope(env)
	for _, elem := range elems {
		loopEnv.Bind(ex.Var, elem)
		body, sig, err := e.evalBlock(ex.Body, scope.NewScope(loopEnv))
		if err != nil {
			return nil, Normal, err
		}
		switch sig {
		case Break:
			return &objects.None{}, Normal, nil
		case Return:
			return body, Return, nil
		case Continue, Normal:
		}
	}
	return &objects.None{}, Normal, nil
}

// evalMatch tests arms in order; the scrutinee is evaluated once and
// compared against each pattern until one matches. Variable and
// enum-variant-with-binding patterns bind into a fresh child scope for
// the arm body only, so no explicit restore is needed afterward.
func (e *Evaluator) evalMatch(ex *ast.MatchExpr, env *scope.Scope) (objects.Value, Signal, error) {
	scrutinee, sig, err := e.evalExpr(ex.Scrutinee, env)
	if err != nil || sig != Normal {
		return scrutinee, sig, err
	}
	for _, arm := range ex.Arms {
		armEnv, matched, err := e.matchPattern(arm.Pattern, scrutinee, env)
		if err != nil {
			return nil, Normal, err
		}
		if matched {
			return e.evalExpr(arm.Body, armEnv)
		}
	}
	return nil, Normal, lerr.New(lerr.Runtime, "no match arm matched value %s", scrutinee.String())
}

func (e *Evaluator) matchPattern(pat ast.Pattern, value objects.Value, env *scope.Scope) (*scope.Scope, bool, error) {
	switch p := pat.(type) {
	case *ast.WildcardPattern:
		return env, true, nil
	case *ast.VariablePattern:
		child := scope.NewScope(env)
		child.Bind(p.Name, value)
		return child, true, nil
	case *ast.LiteralPattern:
		lit, sig, err := e.evalExpr(p.Value, env)
		if err != nil || sig != Normal {
			return env, false, err
		}
		return env, valuesEqual(lit, value), nil
	case *ast.EnumVariantPattern:
		enumVal, ok := value.(*objects.Enum)
		if !ok || enumVal.EnumName != p.Enum || enumVal.Variant != p.Variant {
			return env, false, nil
		}
		if p.Binding == nil {
			return env, true, nil
		}
		child := scope.NewScope(env)
		payload := enumVal.Payload
		if payload == nil {
			payload = &objects.None{}
		}
		child.Bind(*p.Binding, payload)
		return child, true, nil
	default:
		return env, false, lerr.New(lerr.Runtime, "unknown pattern kind %T", pat)
	}
}
