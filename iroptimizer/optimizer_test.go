/*
File    : l/iroptimizer/optimizer_test.go
Author  : adapted from go-mix by Akash Maji
*/

package iroptimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/l-lang/l/ir"
	"github.com/l-lang/l/parser"
)

func lowerSrc(t *testing.T, src string) *ir.Program {
	t.Helper()
	p := parser.NewParser(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "%v", p.Errors)
	out, err := ir.Lower(prog)
	require.NoError(t, err)
	return out
}

func TestFoldConstantsIntArithmetic(t *testing.T) {
	prog := lowerSrc(t, `fn calc() -> int { 2 + 3 * 4 }`)
	res, err := Optimize(prog, Basic)
	require.NoError(t, err)

	lit, ok := res.Program.Functions[0].Body.Expr.(*ir.IntLit)
	require.True(t, ok)
	require.Equal(t, int64(14), lit.Value)
}

func TestEliminateDeadCodeAfterReturn(t *testing.T) {
	prog := lowerSrc(t, `
fn helper() -> int {
	return 1;
	return 2;
}
fn main() -> int {
	helper()
}`)
	res, err := Optimize(prog, Standard)
	require.NoError(t, err)

	var helper *ir.Function
	for _, fn := range res.Program.Functions {
		if fn.Name == "helper" {
			helper = fn
		}
	}
	require.NotNil(t, helper)
	require.Len(t, helper.Body.Statements, 1)
}

func TestUnusedFunctionRemoval(t *testing.T) {
	prog := lowerSrc(t, `
fn unused() -> int { 1 }
fn main() -> int { 2 }`)
	prog.Functions[1].Public = true
	prog.Functions[0].Public = false

	res, err := Optimize(prog, Standard)
	require.NoError(t, err)
	require.Len(t, res.Program.Functions, 1)
	require.Equal(t, "main", res.Program.Functions[0].Name)
}

func TestInlineNonRecursiveCandidate(t *testing.T) {
	prog := lowerSrc(t, `
fn square() -> int { 4 }
fn main() -> int { square() }`)
	res, err := Optimize(prog, Standard)
	require.NoError(t, err)

	var main *ir.Function
	for _, fn := range res.Program.Functions {
		if fn.Name == "main" {
			main = fn
		}
	}
	require.NotNil(t, main)
	_, isCall := main.Body.Expr.(*ir.Call)
	require.False(t, isCall)
}

func TestInlineSkipsCandidateReferencingItsOwnParameter(t *testing.T) {
	prog := lowerSrc(t, `
fn add1(n) -> int { n + 1 }
fn main() -> int { add1(5) }`)
	res, err := Optimize(prog, Standard)
	require.NoError(t, err)

	var main *ir.Function
	for _, fn := range res.Program.Functions {
		if fn.Name == "main" {
			main = fn
		}
	}
	require.NotNil(t, main)
	_, isCall := main.Body.Expr.(*ir.Call)
	require.True(t, isCall, "a candidate referencing its own parameter must not be inlined unsubstituted")
}
