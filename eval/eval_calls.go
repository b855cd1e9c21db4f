/*
File    : l/eval/eval_calls.go
Author  : adapted from go-mix by Akash Maji
*/
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/function"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

// evalFunctionLiteral constructs a function value capturing env (the
// current environment chain, i.e. a lexical closure) and, when the
// literal is named (`fn foo(...) {...}` at statement position, parsed as
// an ExprStmt per the expression-oriented grammar), binds it into the
// current frame under that name.
func (e *Evaluator) evalFunctionLiteral(fn *ast.FunctionLiteral, env *scope.Scope) (objects.Value, Signal, error) {
	val := &function.Function{Name: fn.Name, Params: fn.Params, Body: fn.Body, Env: env}
	if fn.Name != "" {
		env.Bind(fn.Name, val)
	}
	return val, Normal, nil
}

// evalCall dispatches a call expression in order:
// 1) Obj.Method(args) where Obj names a struct definition -> static
//    method, no self bound;
// 2) Obj.Method(args) where Obj evaluates to a struct value -> instance
//    method, self bound to the object;
// 3) Name(args) where Name is a built-in -> dispatched to the built-in
//    table (built-ins are consulted before ordinary name resolution,
//    reserved at call time, not at bind time);
// 4) otherwise the callee must evaluate to a function value.
func (e *Evaluator) evalCall(ex *ast.CallExpr, env *scope.Scope) (objects.Value, Signal, error) {
	if access, ok := ex.Callee.(*ast.FieldAccess); ok {
		return e.evalMethodCall(access, ex.Args, env)
	}

	if ident, ok := ex.Callee.(*ast.Identifier); ok {
		if b, found := builtinOrNil(ident.Name); found {
			args, sig, err := e.evalArgs(ex.Args, env)
			if err != nil || sig != Normal {
				return nil, sig, err
			}
			v, err := b.Call(args)
			if err != nil {
				return nil, Normal, err
			}
			return v, Normal, nil
		}
	}

	callee, sig, err := e.evalExpr(ex.Callee, env)
	if err != nil || sig != Normal {
		return callee, sig, err
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "cannot call a value of type %s", callee.Type())
	}
	args, sig, err := e.evalArgs(ex.Args, env)
	if err != nil || sig != Normal {
		return nil, sig, err
	}
	v, err := e.callFunction(fn, args)
	if err != nil {
		return nil, Normal, err
	}
	return v, Normal, nil
}

func (e *Evaluator) evalMethodCall(access *ast.FieldAccess, argExprs []ast.Expr, env *scope.Scope) (objects.Value, Signal, error) {
	if ident, ok := access.Object.(*ast.Identifier); ok {
		if _, isStruct := e.Structs[ident.Name]; isStruct {
			if _, shadowed := env.LookUp(ident.Name); !shadowed {
				method, ok := e.lookupMethod(ident.Name, access.Field)
				if !ok {
					return nil, Normal, lerr.New(lerr.Runtime, "struct %s has no method %s", ident.Name, access.Field)
				}
				args, sig, err := e.evalArgs(argExprs, env)
				if err != nil || sig != Normal {
					return nil, sig, err
				}
				v, err := e.callMethod(method, nil, args, env)
				if err != nil {
					return nil, Normal, err
				}
				return v, Normal, nil
			}
		}
	}

	obj, sig, err := e.evalExpr(access.Object, env)
	if err != nil || sig != Normal {
		return obj, sig, err
	}
	strct, ok := obj.(*objects.Struct)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "cannot call method %s on %s", access.Field, obj.Type())
	}
	method, ok := e.lookupMethod(strct.Name, access.Field)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "struct %s has no method %s", strct.Name, access.Field)
	}
	args, sig, err := e.evalArgs(argExprs, env)
	if err != nil || sig != Normal {
		return nil, sig, err
	}
	v, err := e.callMethod(method, strct, args, env)
	if err != nil {
		return nil, Normal, err
	}
	return v, Normal, nil
}

func (e *Evaluator) evalArgs(exprs []ast.Expr, env *scope.Scope) ([]objects.Value, Signal, error) {
	args := make([]objects.Value, len(exprs))
	for i, a := range exprs {
		v, sig, err := e.evalExpr(a, env)
		if err != nil || sig != Normal {
			return nil, sig, err
		}
		args[i] = v
	}
	return args, Normal, nil
}
