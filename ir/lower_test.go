/*
File    : l/ir/lower_test.go
Author  : adapted from go-mix by Akash Maji
*/

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/ast"
	"github.com/l-lang/l/parser"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	return prog
}

func TestLowerSimpleFunction(t *testing.T) {
	prog := parseProgram(t, `fn add(a: int, b: int) -> int { a + b }`)

	out, err := Lower(prog)
	require.NoError(t, err)
	require.Len(t, out.Functions, 1)

	fn := out.Functions[0]
	require.Equal(t, "add", fn.Name)
	require.True(t, fn.Body.IsExprBody())

	bin, ok := fn.Body.Expr.(*Binary)
	require.True(t, ok)
	require.Equal(t, "+", bin.Op)
}

func TestLowerGlobalLiteral(t *testing.T) {
	prog := parseProgram(t, `let limit = 10;`)

	out, err := Lower(prog)
	require.NoError(t, err)
	require.Len(t, out.Globals, 1)
	require.Equal(t, "limit", out.Globals[0].Name)

	lit, ok := out.Globals[0].Value.(*IntLit)
	require.True(t, ok)
	require.Equal(t, int64(10), lit.Value)
}

func TestLowerRejectsFieldAccess(t *testing.T) {
	prog := parseProgram(t, `fn bad(p: Point) -> int { p.x }`)

	_, err := Lower(prog)
	require.Error(t, err)
}

func TestLowerIfAsStatement(t *testing.T) {
	prog := parseProgram(t, `
fn classify(n: int) -> int {
	if n < 0 {
		return 0 - 1;
	} else {
		return 1;
	}
	0
}`)

	out, err := Lower(prog)
	require.NoError(t, err)
	require.Len(t, out.Functions, 1)
	require.False(t, out.Functions[0].Body.IsExprBody())
	require.IsType(t, &IfStmt{}, out.Functions[0].Body.Statements[0])
}
