/*
File    : l/eval/eval_assignments.go
Author  : adapted from go-mix by Akash Maji
*/
package eval

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
	"github.com/l-lang/l/objects"
	"github.com/l-lang/l/scope"
)

// evalStmt evaluates one statement, returning its value (meaningful only
// for ExprStmt and for ReturnStmt, which returns the returned value with
// the Return signal -- every other statement kind returns none), any
// escaping control-flow signal, and any error.
func (e *Evaluator) evalStmt(stmt ast.Stmt, env *scope.Scope) (objects.Value, Signal, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return e.evalExpr(s.Expr, env)
	case *ast.LetStmt:
		return e.evalLet(s, env)
	case *ast.AssignStmt:
		return e.evalAssign(s, env)
	case *ast.FieldAssignStmt:
		return e.evalFieldAssign(s, env)
	case *ast.StructDef:
		e.registerStruct(s)
		return &objects.None{}, Normal, nil
	case *ast.EnumDef:
		e.Enums[s.Name] = s
		return &objects.None{}, Normal, nil
	case *ast.TraitDef:
		e.Traits[s.Name] = s
		return &objects.None{}, Normal, nil
	case *ast.ImplBlock:
		e.registerMethods(s.Type, s.Methods)
		return &objects.None{}, Normal, nil
	case *ast.ReturnStmt:
		if s.Value == nil {
			return &objects.None{}, Return, nil
		}
		v, sig, err := e.evalExpr(s.Value, env)
		if err != nil || sig != Normal {
			return v, sig, err
		}
		return v, Return, nil
	case *ast.BreakStmt:
		return &objects.None{}, Break, nil
	case *ast.ContinueStmt:
		return &objects.None{}, Continue, nil
	default:
		return nil, Normal, lerr.New(lerr.Runtime, "cannot evaluate statement of type %T", stmt)
	}
}

func (e *Evaluator) evalLet(s *ast.LetStmt, env *scope.Scope) (objects.Value, Signal, error) {
	v, sig, err := e.evalExpr(s.Init, env)
	if err != nil || sig != Normal {
		return v, sig, err
	}
	env.Bind(s.Name, v)
	return &objects.None{}, Normal, nil
}

func (e *Evaluator) evalAssign(s *ast.AssignStmt, env *scope.Scope) (objects.Value, Signal, error) {
	v, sig, err := e.evalExpr(s.Value, env)
	if err != nil || sig != Normal {
		return v, sig, err
	}
	if _, ok := env.Assign(s.Name, v); !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "assignment to undefined variable %s", s.Name)
	}
	return &objects.None{}, Normal, nil
}

// evalFieldAssign implements the only field-assignment shape the grammar
// accepts at statement head (`ident.field = expr`). Because env.LookUp
// hands back a fresh clone of the struct rather than the stored value,
// mutating strct.Fields here and rebinding it is what reaches the
// variable itself -- mutating a clone in place and never storing it back
// would silently be lost.
func (e *Evaluator) evalFieldAssign(s *ast.FieldAssignStmt, env *scope.Scope) (objects.Value, Signal, error) {
	obj, ok := env.LookUp(s.Object)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "assignment to field of undefined variable %s", s.Object)
	}
	strct, ok := obj.(*objects.Struct)
	if !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "%s.%s: %s is not a struct", s.Object, s.Field, obj.Type())
	}
	v, sig, err := e.evalExpr(s.Value, env)
	if err != nil || sig != Normal {
		return v, sig, err
	}
	strct.Fields[s.Field] = v
	if _, ok := env.Assign(s.Object, strct); !ok {
		return nil, Normal, lerr.New(lerr.Runtime, "assignment to field of undefined variable %s", s.Object)
	}
	return &objects.None{}, Normal, nil
}

func (e *Evaluator) registerStruct(s *ast.StructDef) {
	e.Structs[s.Name] = s
	if len(s.Methods) > 0 {
		e.registerMethods(s.Name, s.Methods)
	}
}
