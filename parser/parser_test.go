/*
File    : l/parser/parser_test.go
Author  : adapted from go-mix by Akash Maji
*/

package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/parser"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	return prog
}

func TestParseLetStmt(t *testing.T) {
	prog := parseOK(t, `let x: int = 2 + 3 * 4`)
	require.Len(t, prog.Statements, 1)
	let, ok := prog.Statements[0].(*ast.LetStmt)
	require.True(t, ok)
	require.Equal(t, "x", let.Name)
	require.NotNil(t, let.Type)
	require.Equal(t, ast.TInt, let.Type.Kind)
	bin, ok := let.Init.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op)
}

func TestBinaryOperatorPrecedence(t *testing.T) {
	prog := parseOK(t, `let x = 2 + 3 * 4`)
	let := prog.Statements[0].(*ast.LetStmt)
	bin := let.Init.(*ast.BinaryExpr)
	require.Equal(t, "+", bin.Op)
	require.IsType(t, &ast.IntLiteral{}, bin.Left)
	mul, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	require.Equal(t, "*", mul.Op)
}

func TestParseFunctionLiteralWithUntypedParam(t *testing.T) {
	prog := parseOK(t, `fn fib(n) { if n < 2 { return n } return fib(n-1) + fib(n-2) }`)
	require.Len(t, prog.Statements, 1)
	es, ok := prog.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	fn, ok := es.Expr.(*ast.FunctionLiteral)
	require.True(t, ok)
	require.Equal(t, "fib", fn.Name)
	require.Len(t, fn.Params, 1)
	require.Equal(t, "n", fn.Params[0].Name)
	require.Nil(t, fn.Params[0].Type)
}

func TestParseStructDefAndLiteral(t *testing.T) {
	prog := parseOK(t, `struct P { x: int, y: int  fn sum(self) -> int { return self.x + self.y } }  let p = P { x: 3, y: 4 }`)
	require.Len(t, prog.Statements, 2)
	def, ok := prog.Statements[0].(*ast.StructDef)
	require.True(t, ok)
	require.Equal(t, "P", def.Name)
	require.Len(t, def.Fields, 2)
	require.Len(t, def.Methods, 1)

	let := prog.Statements[1].(*ast.LetStmt)
	lit, ok := let.Init.(*ast.StructLiteral)
	require.True(t, ok)
	require.Equal(t, "P", lit.Name)
	require.Len(t, lit.Fields, 2)
}

func TestParseEnumVariantConstruction(t *testing.T) {
	prog := parseOK(t, `enum Opt { Some(int), None }  let v = Opt::Some(5)`)
	require.Len(t, prog.Statements, 2)
	let := prog.Statements[1].(*ast.LetStmt)
	variant, ok := let.Init.(*ast.EnumVariantExpr)
	require.True(t, ok)
	require.Equal(t, "Opt", variant.Enum)
	require.Equal(t, "Some", variant.Variant)
	require.NotNil(t, variant.Data)
}

func TestParseMatchExprCommaSeparatedArms(t *testing.T) {
	prog := parseOK(t, `fn main() { match v { Opt::Some(n) => print(n), Opt::None => print(0) } }`)
	fn := prog.Statements[0].(*ast.ExprStmt).Expr.(*ast.FunctionLiteral)
	es := fn.Body.Statements[0].(*ast.ExprStmt)
	match, ok := es.Expr.(*ast.MatchExpr)
	require.True(t, ok)
	require.Len(t, match.Arms, 2)
}

func TestParseWhileWithBreak(t *testing.T) {
	prog := parseOK(t, `fn main() { let i = 0  while i < 5 { if i == 3 { break }  i = i + 1 } }`)
	fn := prog.Statements[0].(*ast.ExprStmt).Expr.(*ast.FunctionLiteral)
	require.Len(t, fn.Body.Statements, 2)
	_, ok := fn.Body.Statements[1].(*ast.ExprStmt).Expr.(*ast.WhileExpr)
	require.True(t, ok)
}

func TestParseForRangeLoop(t *testing.T) {
	prog := parseOK(t, `fn main() { for i in range(1, 11) { print(i) } }`)
	fn := prog.Statements[0].(*ast.ExprStmt).Expr.(*ast.FunctionLiteral)
	es := fn.Body.Statements[0].(*ast.ExprStmt)
	forExpr, ok := es.Expr.(*ast.ForExpr)
	require.True(t, ok)
	require.Equal(t, "i", forExpr.Var)
}

func TestParseFieldAssignStmt(t *testing.T) {
	prog := parseOK(t, `fn main() { p.x = 5 }`)
	fn := prog.Statements[0].(*ast.ExprStmt).Expr.(*ast.FunctionLiteral)
	assign, ok := fn.Body.Statements[0].(*ast.FieldAssignStmt)
	require.True(t, ok)
	require.Equal(t, "p", assign.Object)
	require.Equal(t, "x", assign.Field)
}

func TestParseArrayLiteralAndIndex(t *testing.T) {
	prog := parseOK(t, `let a = [1, 2, 3]  let b = a[0]`)
	let0 := prog.Statements[0].(*ast.LetStmt)
	arr, ok := let0.Init.(*ast.ArrayLiteral)
	require.True(t, ok)
	require.Len(t, arr.Elements, 3)

	let1 := prog.Statements[1].(*ast.LetStmt)
	idx, ok := let1.Init.(*ast.IndexExpr)
	require.True(t, ok)
	require.IsType(t, &ast.Identifier{}, idx.Left)
}

func TestParseBracketArrayTypeAnnotation(t *testing.T) {
	prog := parseOK(t, `let xs: [int] = [1, 2, 3]`)
	let := prog.Statements[0].(*ast.LetStmt)
	require.Equal(t, ast.TArray, let.Type.Kind)
	require.Equal(t, ast.TInt, let.Type.ElemType.Kind)
}

func TestParseArrayKeywordTypeAnnotation(t *testing.T) {
	prog := parseOK(t, `let xs: array[int] = [1, 2, 3]`)
	let := prog.Statements[0].(*ast.LetStmt)
	require.Equal(t, ast.TArray, let.Type.Kind)
	require.Equal(t, ast.TInt, let.Type.ElemType.Kind)
}

func TestParseErrorOnUnexpectedToken(t *testing.T) {
	p := parser.NewParser(`let x = `)
	p.Parse()
	require.True(t, p.HasErrors())
}

func TestParseErrorOnMismatchedBrace(t *testing.T) {
	p := parser.NewParser(`fn main( { }`)
	p.Parse()
	require.True(t, p.HasErrors())
}
