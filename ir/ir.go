/*
File    : l/ir/ir.go
Author  : adapted from go-mix by Akash Maji
*/

// Package ir defines L's intermediate representation: a narrower,
// evaluator-independent form that deliberately omits field access,
// structs, enums, for-loops, closures, and method dispatch, so the
// optimizer and placeholder backends see only a first-order
// numeric/boolean/array core. Grounded in the shape of
// original_source/src/compiler/ir.rs (the Rust source this spec
// distills), rendered in the teacher's one-struct-per-node idiom
// (ast.go) the way package ast already is.
package ir

import "github.com/l-lang/l/ast"

// Program is the lowered unit the optimizer and backends consume: an
// ordered list of functions and an ordered list of globals.
type Program struct {
	Functions []*Function
	Globals   []*Global
}

// Param is one IR function parameter: a name and its declared type,
// copied from the source annotation (nil when the parameter has none).
type Param struct {
	Name string
	Type *ast.TypeExpr
}

// Function is an IR-level function: name, typed parameters, an optional
// return type, a body, and whether it is reachable from outside this
// compilation unit (public functions are never removed by dead-code
// elimination's unused-function pass).
type Function struct {
	Name       string
	Params     []Param
	ReturnType *ast.TypeExpr
	Body       *Block
	Public     bool
}

// Global is a top-level `let` binding whose initializer was a literal
// (the only top-level let shape lowering accepts).
type Global struct {
	Name  string
	Value Expression
}

// Block is either a sequence of statements or a single expression. A
// function whose Block has Expr set and Statements nil is a
// single-expression-body function -- exactly the shape the inliner
// restricts candidates to.
type Block struct {
	Statements []Statement
	Expr       Expression
}

// IsExprBody reports whether this block is the single-expression form.
func (b *Block) IsExprBody() bool { return b.Expr != nil && b.Statements == nil }

// Statement is the closed IR statement sum: let, assign, return, break,
// continue, expression, if, while.
type Statement interface {
	stmtNode()
}

type LetStmt struct {
	Name  string
	Type  *ast.TypeExpr
	Value Expression
}

type AssignStmt struct {
	Name  string
	Value Expression
}

type ReturnStmt struct{ Value Expression } // nil for a bare `return`

type BreakStmt struct{}
type ContinueStmt struct{}

type ExprStmt struct{ Expr Expression }

type IfStmt struct {
	Condition Expression
	Then      []Statement
	Else      []Statement // nil when there is no else branch
}

type WhileStmt struct {
	Condition Expression
	Body      []Statement
}

func (*LetStmt) stmtNode()      {}
func (*AssignStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}

// Expression is the closed IR expression sum: literal, variable, binary
// op, unary op, call (callee is a bare name, not an expression), index.
type Expression interface {
	exprNode()
}

type IntLit struct{ Value int64 }
type FloatLit struct{ Value float64 }
type StringLit struct{ Value string }
type BoolLit struct{ Value bool }

type Variable struct{ Name string }

type Binary struct {
	Op    string
	Left  Expression
	Right Expression
}

type Unary struct {
	Op    string
	Right Expression
}

// Call's Callee is a bare identifier, never an arbitrary expression:
// every IR Call.callee must name either an IR function or a known
// built-in, which only a name (not a first-class function value) can
// satisfy.
type Call struct {
	Callee string
	Args   []Expression
}

type Index struct {
	Left  Expression
	Index Expression
}

func (*IntLit) exprNode()    {}
func (*FloatLit) exprNode()  {}
func (*StringLit) exprNode() {}
func (*BoolLit) exprNode()   {}
func (*Variable) exprNode()  {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Call) exprNode()      {}
func (*Index) exprNode()     {}
