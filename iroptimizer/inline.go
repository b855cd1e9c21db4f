/*
File    : l/iroptimizer/inline.go
Author  : adapted from go-mix by Akash Maji
*/

package iroptimizer

import "github.com/l-lang/l/ir"

const maxInlinePasses = 3

// InlineSmallFunctions repeatedly replaces call sites naming a candidate
// function with a clone of that candidate's body expression, up to
// maxInlinePasses or until a pass changes nothing.
//
// This pass never substitutes call-site arguments for a candidate's
// parameters, so a body that references any of its own parameters is
// simply not a candidate -- splicing it in unsubstituted would silently
// evaluate to whatever a same-named variable happens to be at the call
// site, not the argument the caller passed. Only zero-parameter bodies,
// or bodies that never mention a parameter name, are inlined.
func InlineSmallFunctions(prog *ir.Program) *ir.Program {
	current := prog
	for i := 0; i < maxInlinePasses; i++ {
		candidates := inlineCandidates(current)
		if len(candidates) == 0 {
			return current
		}
		next, changed := inlinePass(current, candidates)
		if !changed {
			return current
		}
		current = next
	}
	return current
}

// inlineCandidates returns every function whose body is a single
// expression (not a statement block), that is non-recursive, and whose
// body references none of its own parameters (see InlineSmallFunctions).
func inlineCandidates(prog *ir.Program) map[string]ir.Expression {
	out := make(map[string]ir.Expression)
	for _, fn := range prog.Functions {
		if !fn.Body.IsExprBody() {
			continue
		}
		if callsSelf(fn.Name, fn.Body.Expr) {
			continue
		}
		if referencesAnyParam(fn.Body.Expr, fn.Params) {
			continue
		}
		out[fn.Name] = fn.Body.Expr
	}
	return out
}

func callsSelf(name string, expr ir.Expression) bool {
	var names []string
	collectCallsExpr(expr, &names)
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// referencesAnyParam reports whether expr mentions any of params by name.
func referencesAnyParam(expr ir.Expression, params []ir.Param) bool {
	if len(params) == 0 {
		return false
	}
	names := make(map[string]bool, len(params))
	for _, p := range params {
		names[p.Name] = true
	}
	return referencesName(expr, names)
}

func referencesName(expr ir.Expression, names map[string]bool) bool {
	switch e := expr.(type) {
	case *ir.Variable:
		return names[e.Name]
	case *ir.Binary:
		return referencesName(e.Left, names) || referencesName(e.Right, names)
	case *ir.Unary:
		return referencesName(e.Right, names)
	case *ir.Index:
		return referencesName(e.Left, names) || referencesName(e.Index, names)
	case *ir.Call:
		for _, a := range e.Args {
			if referencesName(a, names) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func inlinePass(prog *ir.Program, candidates map[string]ir.Expression) (*ir.Program, bool) {
	changed := false
	out := &ir.Program{Globals: prog.Globals}
	out.Functions = make([]*ir.Function, len(prog.Functions))
	for i, fn := range prog.Functions {
		body, didChange := inlineBlock(fn.Body, fn.Name, candidates)
		if didChange {
			changed = true
		}
		clone := *fn
		clone.Body = body
		out.Functions[i] = &clone
	}
	return out, changed
}

func inlineBlock(b *ir.Block, selfName string, candidates map[string]ir.Expression) (*ir.Block, bool) {
	if b.IsExprBody() {
		e, changed := inlineExpr(b.Expr, selfName, candidates)
		return &ir.Block{Expr: e}, changed
	}
	stmts, changed := inlineStmts(b.Statements, selfName, candidates)
	return &ir.Block{Statements: stmts}, changed
}

func inlineStmts(stmts []ir.Statement, selfName string, candidates map[string]ir.Expression) ([]ir.Statement, bool) {
	out := make([]ir.Statement, len(stmts))
	changed := false
	for i, s := range stmts {
		ns, didChange := inlineStmt(s, selfName, candidates)
		out[i] = ns
		changed = changed || didChange
	}
	return out, changed
}

func inlineStmt(stmt ir.Statement, selfName string, candidates map[string]ir.Expression) (ir.Statement, bool) {
	switch s := stmt.(type) {
	case *ir.LetStmt:
		v, c := inlineExpr(s.Value, selfName, candidates)
		return &ir.LetStmt{Name: s.Name, Type: s.Type, Value: v}, c
	case *ir.AssignStmt:
		v, c := inlineExpr(s.Value, selfName, candidates)
		return &ir.AssignStmt{Name: s.Name, Value: v}, c
	case *ir.ReturnStmt:
		if s.Value == nil {
			return s, false
		}
		v, c := inlineExpr(s.Value, selfName, candidates)
		return &ir.ReturnStmt{Value: v}, c
	case *ir.ExprStmt:
		v, c := inlineExpr(s.Expr, selfName, candidates)
		return &ir.ExprStmt{Expr: v}, c
	case *ir.IfStmt:
		cond, c1 := inlineExpr(s.Condition, selfName, candidates)
		then, c2 := inlineStmts(s.Then, selfName, candidates)
		els, c3 := inlineStmts(s.Else, selfName, candidates)
		return &ir.IfStmt{Condition: cond, Then: then, Else: els}, c1 || c2 || c3
	case *ir.WhileStmt:
		cond, c1 := inlineExpr(s.Condition, selfName, candidates)
		body, c2 := inlineStmts(s.Body, selfName, candidates)
		return &ir.WhileStmt{Condition: cond, Body: body}, c1 || c2
	default:
		return stmt, false
	}
}

func inlineExpr(expr ir.Expression, selfName string, candidates map[string]ir.Expression) (ir.Expression, bool) {
	switch e := expr.(type) {
	case *ir.Binary:
		left, c1 := inlineExpr(e.Left, selfName, candidates)
		right, c2 := inlineExpr(e.Right, selfName, candidates)
		return &ir.Binary{Op: e.Op, Left: left, Right: right}, c1 || c2
	case *ir.Unary:
		right, c := inlineExpr(e.Right, selfName, candidates)
		return &ir.Unary{Op: e.Op, Right: right}, c
	case *ir.Index:
		left, c1 := inlineExpr(e.Left, selfName, candidates)
		idx, c2 := inlineExpr(e.Index, selfName, candidates)
		return &ir.Index{Left: left, Index: idx}, c1 || c2
	case *ir.Call:
		args := make([]ir.Expression, len(e.Args))
		changed := false
		for i, a := range e.Args {
			na, c := inlineExpr(a, selfName, candidates)
			args[i] = na
			changed = changed || c
		}
		if e.Callee != selfName {
			if body, ok := candidates[e.Callee]; ok {
				return cloneExpr(body), true
			}
		}
		return &ir.Call{Callee: e.Callee, Args: args}, changed
	default:
		return expr, false
	}
}

// cloneExpr deep-copies an expression tree so the same candidate body can
// be spliced into multiple call sites without aliasing.
func cloneExpr(expr ir.Expression) ir.Expression {
	switch e := expr.(type) {
	case *ir.IntLit:
		v := *e
		return &v
	case *ir.FloatLit:
		v := *e
		return &v
	case *ir.StringLit:
		v := *e
		return &v
	case *ir.BoolLit:
		v := *e
		return &v
	case *ir.Variable:
		v := *e
		return &v
	case *ir.Binary:
		return &ir.Binary{Op: e.Op, Left: cloneExpr(e.Left), Right: cloneExpr(e.Right)}
	case *ir.Unary:
		return &ir.Unary{Op: e.Op, Right: cloneExpr(e.Right)}
	case *ir.Call:
		args := make([]ir.Expression, len(e.Args))
		for i, a := range e.Args {
			args[i] = cloneExpr(a)
		}
		return &ir.Call{Callee: e.Callee, Args: args}
	case *ir.Index:
		return &ir.Index{Left: cloneExpr(e.Left), Index: cloneExpr(e.Index)}
	default:
		return expr
	}
}
