/*
File    : l/iroptimizer/dce.go
Author  : adapted from go-mix by Akash Maji
*/

package iroptimizer

import "github.com/l-lang/l/ir"

// EliminateDeadCode runs the two dead-code rewrites in sequence:
// statements after a return are dropped from every block, and functions
// unreachable from main or any public function are removed entirely.
func EliminateDeadCode(prog *ir.Program) *ir.Program {
	trimmed := &ir.Program{Globals: prog.Globals}
	trimmed.Functions = make([]*ir.Function, len(prog.Functions))
	for i, fn := range prog.Functions {
		clone := *fn
		clone.Body = pruneAfterReturn(fn.Body)
		trimmed.Functions[i] = &clone
	}
	return removeUnreachableFunctions(trimmed)
}

// pruneAfterReturn deletes statements following the first return in a
// statement list, recursing into if/while bodies.
func pruneAfterReturn(b *ir.Block) *ir.Block {
	if b.IsExprBody() {
		return b
	}
	return &ir.Block{Statements: pruneStmts(b.Statements)}
}

func pruneStmts(stmts []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, 0, len(stmts))
	for _, s := range stmts {
		switch v := s.(type) {
		case *ir.IfStmt:
			out = append(out, &ir.IfStmt{
				Condition: v.Condition,
				Then:      pruneStmts(v.Then),
				Else:      pruneStmts(v.Else),
			})
		case *ir.WhileStmt:
			out = append(out, &ir.WhileStmt{
				Condition: v.Condition,
				Body:      pruneStmts(v.Body),
			})
		case *ir.ReturnStmt:
			out = append(out, v)
			return out
		default:
			out = append(out, v)
		}
	}
	return out
}

// removeUnreachableFunctions keeps main, every public function, and
// everything transitively reachable from those roots by scanning call
// expressions for callee names.
func removeUnreachableFunctions(prog *ir.Program) *ir.Program {
	byName := make(map[string]*ir.Function, len(prog.Functions))
	for _, fn := range prog.Functions {
		byName[fn.Name] = fn
	}

	reachable := make(map[string]bool)
	var visit func(name string)
	visit = func(name string) {
		if reachable[name] {
			return
		}
		fn, ok := byName[name]
		if !ok {
			return
		}
		reachable[name] = true
		for _, call := range collectCalls(fn.Body) {
			visit(call)
		}
	}

	for _, fn := range prog.Functions {
		if fn.Public || fn.Name == "main" {
			visit(fn.Name)
		}
	}

	kept := make([]*ir.Function, 0, len(prog.Functions))
	for _, fn := range prog.Functions {
		if reachable[fn.Name] {
			kept = append(kept, fn)
		}
	}
	return &ir.Program{Functions: kept, Globals: prog.Globals}
}

func collectCalls(b *ir.Block) []string {
	var names []string
	if b.IsExprBody() {
		collectCallsExpr(b.Expr, &names)
		return names
	}
	for _, s := range b.Statements {
		collectCallsStmt(s, &names)
	}
	return names
}

func collectCallsStmt(stmt ir.Statement, out *[]string) {
	switch s := stmt.(type) {
	case *ir.LetStmt:
		collectCallsExpr(s.Value, out)
	case *ir.AssignStmt:
		collectCallsExpr(s.Value, out)
	case *ir.ReturnStmt:
		if s.Value != nil {
			collectCallsExpr(s.Value, out)
		}
	case *ir.ExprStmt:
		collectCallsExpr(s.Expr, out)
	case *ir.IfStmt:
		collectCallsExpr(s.Condition, out)
		for _, st := range s.Then {
			collectCallsStmt(st, out)
		}
		for _, st := range s.Else {
			collectCallsStmt(st, out)
		}
	case *ir.WhileStmt:
		collectCallsExpr(s.Condition, out)
		for _, st := range s.Body {
			collectCallsStmt(st, out)
		}
	}
}

func collectCallsExpr(expr ir.Expression, out *[]string) {
	switch e := expr.(type) {
	case *ir.Binary:
		collectCallsExpr(e.Left, out)
		collectCallsExpr(e.Right, out)
	case *ir.Unary:
		collectCallsExpr(e.Right, out)
	case *ir.Call:
		*out = append(*out, e.Callee)
		for _, a := range e.Args {
			collectCallsExpr(a, out)
		}
	case *ir.Index:
		collectCallsExpr(e.Left, out)
		collectCallsExpr(e.Index, out)
	}
}
