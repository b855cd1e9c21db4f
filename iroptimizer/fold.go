/*
File    : l/iroptimizer/fold.go
Author  : adapted from go-mix by Akash Maji
*/

package iroptimizer

import "github.com/l-lang/l/ir"

// FoldConstants rewrites the program bottom-up, replacing binary and
// unary operations over literal operands with their literal result.
// Only the operator set the source folds is handled here: int
// `+ - * / == !=` and unary `-int`, `!bool`; everything else (float
// arithmetic, string concatenation, comparisons) passes through
// unfolded, matching the deliberately narrow fold set described for the
// original optimizer.
func FoldConstants(prog *ir.Program) *ir.Program {
	out := &ir.Program{Globals: make([]*ir.Global, len(prog.Globals))}
	out.Functions = make([]*ir.Function, len(prog.Functions))
	for i, fn := range prog.Functions {
		out.Functions[i] = foldFunction(fn)
	}
	for i, g := range prog.Globals {
		clone := *g
		clone.Value = foldExpr(g.Value)
		out.Globals[i] = &clone
	}
	return out
}

func foldFunction(fn *ir.Function) *ir.Function {
	clone := *fn
	clone.Body = foldBlock(fn.Body)
	return &clone
}

func foldBlock(b *ir.Block) *ir.Block {
	if b.IsExprBody() {
		return &ir.Block{Expr: foldExpr(b.Expr)}
	}
	return &ir.Block{Statements: foldStmts(b.Statements)}
}

func foldStmts(stmts []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, len(stmts))
	for i, s := range stmts {
		out[i] = foldStmt(s)
	}
	return out
}

func foldStmt(stmt ir.Statement) ir.Statement {
	switch s := stmt.(type) {
	case *ir.LetStmt:
		return &ir.LetStmt{Name: s.Name, Type: s.Type, Value: foldExpr(s.Value)}
	case *ir.AssignStmt:
		return &ir.AssignStmt{Name: s.Name, Value: foldExpr(s.Value)}
	case *ir.ReturnStmt:
		if s.Value == nil {
			return s
		}
		return &ir.ReturnStmt{Value: foldExpr(s.Value)}
	case *ir.ExprStmt:
		return &ir.ExprStmt{Expr: foldExpr(s.Expr)}
	case *ir.IfStmt:
		return &ir.IfStmt{
			Condition: foldExpr(s.Condition),
			Then:      foldStmts(s.Then),
			Else:      foldStmts(s.Else),
		}
	case *ir.WhileStmt:
		return &ir.WhileStmt{
			Condition: foldExpr(s.Condition),
			Body:      foldStmts(s.Body),
		}
	default:
		return stmt
	}
}

func foldExpr(expr ir.Expression) ir.Expression {
	switch e := expr.(type) {
	case *ir.Binary:
		left := foldExpr(e.Left)
		right := foldExpr(e.Right)
		if folded, ok := foldBinary(e.Op, left, right); ok {
			return folded
		}
		return &ir.Binary{Op: e.Op, Left: left, Right: right}
	case *ir.Unary:
		right := foldExpr(e.Right)
		if folded, ok := foldUnary(e.Op, right); ok {
			return folded
		}
		return &ir.Unary{Op: e.Op, Right: right}
	case *ir.Call:
		args := make([]ir.Expression, len(e.Args))
		for i, a := range e.Args {
			args[i] = foldExpr(a)
		}
		return &ir.Call{Callee: e.Callee, Args: args}
	case *ir.Index:
		return &ir.Index{Left: foldExpr(e.Left), Index: foldExpr(e.Index)}
	default:
		return expr
	}
}

// foldBinary folds only int operands. An int division by a literal zero
// is not folded: it returns (nil, false), no error is reported for it,
// and the expression stays in the program as written -- this pass never
// aborts the whole build.
func foldBinary(op string, left, right ir.Expression) (ir.Expression, bool) {
	li, lok := left.(*ir.IntLit)
	ri, rok := right.(*ir.IntLit)
	if !lok || !rok {
		return nil, false
	}
	switch op {
	case "+":
		return &ir.IntLit{Value: li.Value + ri.Value}, true
	case "-":
		return &ir.IntLit{Value: li.Value - ri.Value}, true
	case "*":
		return &ir.IntLit{Value: li.Value * ri.Value}, true
	case "/":
		if ri.Value == 0 {
			return nil, false
		}
		return &ir.IntLit{Value: li.Value / ri.Value}, true
	case "==":
		return &ir.BoolLit{Value: li.Value == ri.Value}, true
	case "!=":
		return &ir.BoolLit{Value: li.Value != ri.Value}, true
	default:
		return nil, false
	}
}

func foldUnary(op string, right ir.Expression) (ir.Expression, bool) {
	switch op {
	case "-":
		if i, ok := right.(*ir.IntLit); ok {
			return &ir.IntLit{Value: -i.Value}, true
		}
	case "!":
		if b, ok := right.(*ir.BoolLit); ok {
			return &ir.BoolLit{Value: !b.Value}, true
		}
	}
	return nil, false
}
