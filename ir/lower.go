/*
File    : l/ir/lower.go
Author  : adapted from go-mix by Akash Maji
*/

package ir

import (
	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/lerr"
)

// Lower narrows a parsed program to its first-order IR subset. Only
// top-level fn declarations and literal-initialized top-level let
// bindings survive; every other top-level statement is dropped
// silently, matching the degrade-gracefully intent of gradual typing
// carried into this stage. Anything inside a surviving function body
// that the IR cannot express -- struct/enum construction, field access,
// for-loops, closures, method calls, or a call whose callee is not a
// bare name -- is a hard lowering error, since there is no narrower
// fallback once a function commits to being lowered.
func Lower(prog *ast.Program) (*Program, error) {
	out := &Program{}
	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.ExprStmt:
			if fn, ok := s.Expr.(*ast.FunctionLiteral); ok && fn.Name != "" {
				lowered, err := lowerFunction(fn)
				if err != nil {
					return nil, err
				}
				out.Functions = append(out.Functions, lowered)
			}
		case *ast.LetStmt:
			if lit, ok := literalExpr(s.Init); ok {
				out.Globals = append(out.Globals, &Global{Name: s.Name, Value: lit})
			}
		}
	}
	return out, nil
}

func lowerFunction(fn *ast.FunctionLiteral) (*Function, error) {
	params := make([]Param, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = Param{Name: p.Name, Type: p.Type}
	}
	body, err := lowerFunctionBody(fn.Body)
	if err != nil {
		return nil, err
	}
	return &Function{
		Name:       fn.Name,
		Params:     params,
		ReturnType: fn.ReturnType,
		Body:       body,
		Public:     true,
	}, nil
}

// lowerFunctionBody detects the single-expression-statement shape (the
// body is exactly one ExprStmt, nothing else) and lowers it to the
// Block.Expr form rather than a one-statement Block.Statements slice, so
// the inliner can recognize trivial functions without re-scanning
// statement lists.
func lowerFunctionBody(block *ast.BlockExpr) (*Block, error) {
	if len(block.Statements) == 1 {
		if es, ok := block.Statements[0].(*ast.ExprStmt); ok {
			expr, err := lowerExpr(es.Expr)
			if err != nil {
				return nil, err
			}
			return &Block{Expr: expr}, nil
		}
	}
	stmts, err := lowerBlockStmts(block.Statements)
	if err != nil {
		return nil, err
	}
	return &Block{Statements: stmts}, nil
}

func lowerBlockStmts(stmts []ast.Stmt) ([]Statement, error) {
	out := make([]Statement, 0, len(stmts))
	for _, stmt := range stmts {
		s, err := lowerStmt(stmt)
		if err != nil {
			return nil, err
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}

func lowerStmt(stmt ast.Stmt) (Statement, error) {
	switch s := stmt.(type) {
	case *ast.LetStmt:
		v, err := lowerExpr(s.Init)
		if err != nil {
			return nil, err
		}
		return &LetStmt{Name: s.Name, Type: s.Type, Value: v}, nil
	case *ast.AssignStmt:
		v, err := lowerExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &AssignStmt{Name: s.Name, Value: v}, nil
	case *ast.ReturnStmt:
		if s.Value == nil {
			return &ReturnStmt{}, nil
		}
		v, err := lowerExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &ReturnStmt{Value: v}, nil
	case *ast.BreakStmt:
		return &BreakStmt{}, nil
	case *ast.ContinueStmt:
		return &ContinueStmt{}, nil
	case *ast.ExprStmt:
		return lowerExprStmt(s.Expr)
	default:
		return nil, lerr.New(lerr.Runtime, "cannot lower statement of type %T to IR", stmt)
	}
}

// lowerExprStmt special-cases if/while used as statements (their value
// discarded) into IrStatement::If/While, rather than forcing them
// through the expression path, since the IR has no notion of a
// statement-position expression value to discard.
func lowerExprStmt(expr ast.Expr) (Statement, error) {
	switch e := expr.(type) {
	case *ast.IfExpr:
		return lowerIfStmt(e)
	case *ast.WhileExpr:
		cond, err := lowerExpr(e.Condition)
		if err != nil {
			return nil, err
		}
		body, err := lowerBlockStmts(e.Body.Statements)
		if err != nil {
			return nil, err
		}
		return &WhileStmt{Condition: cond, Body: body}, nil
	default:
		v, err := lowerExpr(expr)
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: v}, nil
	}
}

func lowerIfStmt(e *ast.IfExpr) (Statement, error) {
	cond, err := lowerExpr(e.Condition)
	if err != nil {
		return nil, err
	}
	then, err := lowerBlockStmts(e.Then.Statements)
	if err != nil {
		return nil, err
	}
	var elseStmts []Statement
	switch els := e.Else.(type) {
	case nil:
	case *ast.BlockExpr:
		elseStmts, err = lowerBlockStmts(els.Statements)
		if err != nil {
			return nil, err
		}
	case *ast.IfExpr:
		nested, err := lowerIfStmt(els)
		if err != nil {
			return nil, err
		}
		elseStmts = []Statement{nested}
	default:
		return nil, lerr.New(lerr.Runtime, "cannot lower else-branch of type %T to IR", e.Else)
	}
	return &IfStmt{Condition: cond, Then: then, Else: elseStmts}, nil
}

func lowerExpr(expr ast.Expr) (Expression, error) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return &IntLit{Value: e.Value}, nil
	case *ast.FloatLiteral:
		return &FloatLit{Value: e.Value}, nil
	case *ast.StringLiteral:
		if e.Interpolated {
			return nil, lerr.New(lerr.Runtime, "cannot lower an interpolated string to IR")
		}
		return &StringLit{Value: e.Value}, nil
	case *ast.BoolLiteral:
		return &BoolLit{Value: e.Value}, nil
	case *ast.Identifier:
		return &Variable{Name: e.Name}, nil
	case *ast.BinaryExpr:
		left, err := lowerExpr(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := lowerExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &Binary{Op: e.Op, Left: left, Right: right}, nil
	case *ast.UnaryExpr:
		right, err := lowerExpr(e.Right)
		if err != nil {
			return nil, err
		}
		return &Unary{Op: e.Op, Right: right}, nil
	case *ast.CallExpr:
		return lowerCall(e)
	case *ast.IndexExpr:
		left, err := lowerExpr(e.Left)
		if err != nil {
			return nil, err
		}
		idx, err := lowerExpr(e.Index)
		if err != nil {
			return nil, err
		}
		return &Index{Left: left, Index: idx}, nil
	default:
		return nil, lerr.New(lerr.Runtime, "cannot lower expression of type %T to IR", expr)
	}
}

// lowerCall requires the callee to be a bare identifier. Method calls
// (`obj.method(...)`) parse as a CallExpr over a FieldAccess callee and
// are rejected here rather than papered over, since the IR has no
// receiver-passing convention.
func lowerCall(e *ast.CallExpr) (Expression, error) {
	ident, ok := e.Callee.(*ast.Identifier)
	if !ok {
		return nil, lerr.New(lerr.Runtime, "IR calls require a bare function name, got %T", e.Callee)
	}
	args := make([]Expression, len(e.Args))
	for i, a := range e.Args {
		v, err := lowerExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return &Call{Callee: ident.Name, Args: args}, nil
}

// literalExpr reports whether expr is one of the literal kinds IR
// globals accept, returning its lowered form.
func literalExpr(expr ast.Expr) (Expression, bool) {
	switch e := expr.(type) {
	case *ast.IntLiteral:
		return &IntLit{Value: e.Value}, true
	case *ast.FloatLiteral:
		return &FloatLit{Value: e.Value}, true
	case *ast.StringLiteral:
		if e.Interpolated {
			return nil, false
		}
		return &StringLit{Value: e.Value}, true
	case *ast.BoolLiteral:
		return &BoolLit{Value: e.Value}, true
	default:
		return nil, false
	}
}
